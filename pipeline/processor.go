// Package pipeline runs outline extraction over directories of
// documents, writing flat and hierarchical JSON outputs.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/config"
	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/ocr"
)

// Output file suffixes for the nested view and the model-performance
// dump written alongside each document's flat outline.
const (
	hierarchicalSuffix = "_hierarchical"
	modelOutputSuffix  = "_model_output"
)

// Processor converts documents into outline JSON files.
type Processor struct {
	cfg       config.Config
	log       *slog.Logger
	predictor classify.Predictor
	pdfSource extract.Source
}

// New creates a processor. The predictor may be nil, in which case
// classification is rule-based only. OCR fallback for scanned PDF pages
// is enabled automatically when the binary was built with OCR support.
func New(cfg config.Config, log *slog.Logger, predictor classify.Predictor) *Processor {
	if log == nil {
		log = slog.Default()
	}

	pdfCfg := extract.DefaultPDFConfig()
	if client, err := ocr.New(); err == nil {
		if err := client.SetLanguage(cfg.OCRLanguage); err != nil {
			log.Warn("set ocr language failed", "language", cfg.OCRLanguage, "error", err)
		}
		pdfCfg.OCR = client
		pdfCfg.Rasterize = extract.NewPdftoppmRasterizer(cfg.PdftoppmPath)
		log.Info("ocr fallback enabled", "language", cfg.OCRLanguage)
	}

	return &Processor{
		cfg:       cfg,
		log:       log,
		predictor: predictor,
		pdfSource: extract.NewPDFExtractorWithConfig(pdfCfg),
	}
}

// Stats summarizes one batch run.
type Stats struct {
	Processed int
	Failed    int
}

// Run processes every supported document in the configured input
// directory using a pool of workers. Per-document failures are logged
// and counted; they do not abort the batch.
func (p *Processor) Run(ctx context.Context) (Stats, error) {
	entries, err := os.ReadDir(p.cfg.InputDir)
	if err != nil {
		return Stats{}, fmt.Errorf("read input dir %s: %w", p.cfg.InputDir, err)
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("create output dir %s: %w", p.cfg.OutputDir, err)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var stats Stats

	for i := 0; i < p.cfg.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				err := p.ProcessFile(ctx, path)
				mu.Lock()
				if err != nil {
					stats.Failed++
					p.log.Error("process failed", "file", path, "error", err)
				} else {
					stats.Processed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		select {
		case jobs <- filepath.Join(p.cfg.InputDir, entry.Name()):
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return stats, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	p.log.Info("batch complete", "processed", stats.Processed, "failed", stats.Failed)
	return stats, nil
}

// ProcessFile extracts the outline of one document and writes its flat
// and hierarchical JSON files to the output directory.
func (p *Processor) ProcessFile(ctx context.Context, path string) error {
	start := time.Now()

	o := outliner.Open(path).
		LineTolerance(p.cfg.LineTolerance).
		Zones(p.cfg.MinRight, p.cfg.MaxBottom).
		WithContext(ctx)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		o = o.WithSource(p.pdfSource)
	}
	if p.predictor != nil {
		o = o.WithPredictor(p.predictor)
	}

	// One run produces both views, so extraction and classification
	// happen once and the outputs cannot disagree.
	res, err := o.Outline()
	if err != nil {
		return fmt.Errorf("outline %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	flat := res.Flat()
	if err := p.writeJSON(stem+".json", flat); err != nil {
		return err
	}
	if err := p.writeJSON(stem+hierarchicalSuffix+".json", res.Hierarchy()); err != nil {
		return err
	}
	if res.ModelUsed {
		if err := p.writeJSON(stem+modelOutputSuffix+".json", res.Headings); err != nil {
			return err
		}
	}

	p.log.Info("processed",
		"file", filepath.Base(path),
		"title", flat.Title,
		"headings", len(flat.Outline),
		"model", res.ModelUsed,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// writeJSON writes v as indented JSON into the output directory.
func (p *Processor) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	out := filepath.Join(p.cfg.OutputDir, name)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

// supported reports whether the file extension is a processable format.
func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".html", ".htm":
		return true
	default:
		return false
	}
}
