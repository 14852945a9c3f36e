// Command outlined serves outline extraction over HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsawler/outliner/api"
	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/config"
	"github.com/tsawler/outliner/mlmodel"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var predictor classify.Predictor
	var model *mlmodel.Client
	if cfg.ModelURL != "" {
		model = mlmodel.NewClient(cfg.ModelURL)
		predictor = model
		if model.Healthy(context.Background()) {
			log.Info("model fallback enabled", "url", cfg.ModelURL)
		} else {
			log.Warn("model service not reachable, will retry per request", "url", cfg.ModelURL)
		}
	}

	srv := api.NewServer(cfg, log, predictor)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if model != nil {
			model.Close()
		}
	}()

	log.Info("starting outlined", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
