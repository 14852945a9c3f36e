package outliner

import (
	"context"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/merge"
)

// outlineOptions holds configuration for outline extraction.
type outlineOptions struct {
	// lineTolerance is the vertical tolerance for grouping fragments
	// into lines during merging.
	lineTolerance float64

	// minRight and maxBottom bound the content zone for heading
	// candidates (margin/footer filtering).
	minRight  float64
	maxBottom float64

	// minHeadings overrides the minimum heading count below which the
	// model fallback is consulted. Zero means derive from page count.
	minHeadings int

	// predictor is an optional model-based classifier used when the
	// rule pass finds too few headings.
	predictor classify.Predictor

	// source overrides the file-based fragment extractor.
	source extract.Source

	// ctx is the context used for predictor calls.
	ctx context.Context
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() outlineOptions {
	classifyCfg := classify.DefaultConfig()
	return outlineOptions{
		lineTolerance: merge.DefaultConfig().LineTolerance,
		minRight:      classifyCfg.MinRight,
		maxBottom:     classifyCfg.MaxBottom,
		ctx:           context.Background(),
	}
}

// clone creates a copy of the options.
func (o outlineOptions) clone() outlineOptions {
	return o
}
