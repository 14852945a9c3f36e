// Command outliner batch-processes a directory of documents into
// outline JSON files.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/config"
	"github.com/tsawler/outliner/mlmodel"
	"github.com/tsawler/outliner/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	inputDir := flag.String("input", "", "input directory (overrides config)")
	outputDir := flag.String("output", "", "output directory (overrides config)")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	var predictor classify.Predictor
	if cfg.ModelURL != "" {
		client := mlmodel.NewClient(cfg.ModelURL)
		defer client.Close()
		predictor = client
		log.Info("model fallback enabled", "url", cfg.ModelURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	proc := pipeline.New(cfg, log, predictor)
	stats, err := proc.Run(ctx)
	if err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}
