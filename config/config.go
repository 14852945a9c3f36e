// Package config loads batch-processing configuration from an optional
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the batch processor and API server.
type Config struct {
	// Port is the HTTP listen port for the API server.
	Port string `yaml:"port"`

	// InputDir is the directory scanned for documents to process.
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the JSON outline files.
	OutputDir string `yaml:"output_dir"`

	// WorkerCount is the number of documents processed concurrently.
	WorkerCount int `yaml:"worker_count"`

	// LineTolerance is the vertical tolerance, in points, for grouping
	// fragments into lines.
	LineTolerance float64 `yaml:"line_tolerance"`

	// MinRight and MaxBottom bound the content zone for heading
	// candidates.
	MinRight  float64 `yaml:"min_right"`
	MaxBottom float64 `yaml:"max_bottom"`

	// ModelURL is the base URL of the heading-classification inference
	// service. Empty disables the model fallback.
	ModelURL string `yaml:"model_url"`

	// OCRLanguage is the Tesseract language string (e.g. "eng+fra").
	OCRLanguage string `yaml:"ocr_language"`

	// PdftoppmPath is the pdftoppm binary used to rasterize pages for
	// OCR. Empty disables rasterization.
	PdftoppmPath string `yaml:"pdftoppm_path"`

	// MaxUploadBytes limits API upload sizes.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Port:           "8080",
		InputDir:       "input",
		OutputDir:      "output",
		WorkerCount:    4,
		LineTolerance:  5.0,
		MinRight:       50.0,
		MaxBottom:      742.0,
		OCRLanguage:    "eng",
		PdftoppmPath:   "pdftoppm",
		MaxUploadBytes: 52428800, // 50MB
	}
}

// Load reads configuration from the YAML file at path (skipped when path
// is empty or the file does not exist), then applies environment
// variable overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.LineTolerance <= 0 {
		cfg.LineTolerance = 5.0
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	c.Port = envOr("OUTLINER_PORT", c.Port)
	c.InputDir = envOr("OUTLINER_INPUT_DIR", c.InputDir)
	c.OutputDir = envOr("OUTLINER_OUTPUT_DIR", c.OutputDir)
	c.WorkerCount = envInt("OUTLINER_WORKERS", c.WorkerCount)
	c.LineTolerance = envFloat("OUTLINER_LINE_TOLERANCE", c.LineTolerance)
	c.MinRight = envFloat("OUTLINER_MIN_RIGHT", c.MinRight)
	c.MaxBottom = envFloat("OUTLINER_MAX_BOTTOM", c.MaxBottom)
	c.ModelURL = envOr("OUTLINER_MODEL_URL", c.ModelURL)
	c.OCRLanguage = envOr("OUTLINER_OCR_LANGUAGE", c.OCRLanguage)
	c.PdftoppmPath = envOr("OUTLINER_PDFTOPPM", c.PdftoppmPath)
	c.MaxUploadBytes = envInt64("OUTLINER_MAX_UPLOAD_BYTES", c.MaxUploadBytes)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
