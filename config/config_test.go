package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.MaxBottom != 742 {
		t.Errorf("MaxBottom = %v, want 742", cfg.MaxBottom)
	}
	if cfg.OCRLanguage != "eng" {
		t.Errorf("OCRLanguage = %q, want eng", cfg.OCRLanguage)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outliner.yaml")
	data := []byte("worker_count: 8\noutput_dir: /tmp/out\nmax_bottom: 790\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.MaxBottom != 790 {
		t.Errorf("MaxBottom = %v, want 790", cfg.MaxBottom)
	}
	// Unset keys keep their defaults.
	if cfg.InputDir != "input" {
		t.Errorf("InputDir = %q, want default", cfg.InputDir)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Errorf("missing file should fall back to defaults, got %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("worker_count: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OUTLINER_WORKERS", "12")
	t.Setenv("OUTLINER_MODEL_URL", "http://model:8500")
	t.Setenv("OUTLINER_MIN_RIGHT", "60.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkerCount != 12 {
		t.Errorf("WorkerCount = %d, want 12", cfg.WorkerCount)
	}
	if cfg.ModelURL != "http://model:8500" {
		t.Errorf("ModelURL = %q", cfg.ModelURL)
	}
	if cfg.MinRight != 60.5 {
		t.Errorf("MinRight = %v, want 60.5", cfg.MinRight)
	}
}
