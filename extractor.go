package outliner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/merge"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

// Outliner provides a fluent interface for extracting document outlines.
// Each configuration method returns a new Outliner instance, making it
// safe for concurrent use and allowing method chaining.
type Outliner struct {
	// Source
	filename      string
	fragments     []model.TextFragment
	haveFragments bool

	// Configuration
	options outlineOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Outliner with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (o *Outliner) clone() *Outliner {
	return &Outliner{
		filename:      o.filename,
		fragments:     o.fragments,
		haveFragments: o.haveFragments,
		options:       o.options.clone(),
		err:           o.err,
	}
}

// ============================================================================
// Configuration Methods (return new Outliner instance)
// ============================================================================

// LineTolerance sets the vertical tolerance, in points, for grouping
// fragments into the same visual line during merging.
//
// Example:
//
//	root, err := outliner.Open("doc.pdf").LineTolerance(4).Hierarchy()
func (o *Outliner) LineTolerance(points float64) *Outliner {
	newOut := o.clone()
	newOut.options.lineTolerance = points
	return newOut
}

// Zones sets the content-zone bounds used to reject margin and footer
// fragments. Fragments whose right edge is left of minRight, or whose
// bottom edge is below maxBottom, are never heading candidates.
//
// Example:
//
//	root, err := outliner.Open("a4.pdf").Zones(50, 790).Hierarchy()
func (o *Outliner) Zones(minRight, maxBottom float64) *Outliner {
	newOut := o.clone()
	newOut.options.minRight = minRight
	newOut.options.maxBottom = maxBottom
	return newOut
}

// WithPredictor attaches a model-based heading classifier. It is
// consulted only when the rule-based pass finds fewer headings than the
// document's minimum (see MinHeadings).
//
// Example:
//
//	client := mlmodel.NewClient("http://localhost:8500")
//	root, err := outliner.Open("doc.pdf").WithPredictor(client).Hierarchy()
func (o *Outliner) WithPredictor(p classify.Predictor) *Outliner {
	newOut := o.clone()
	newOut.options.predictor = p
	return newOut
}

// WithContext sets the context used for predictor calls.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	root, err := outliner.Open("doc.pdf").
//	    WithPredictor(client).
//	    WithContext(ctx).
//	    Hierarchy()
func (o *Outliner) WithContext(ctx context.Context) *Outliner {
	newOut := o.clone()
	newOut.options.ctx = ctx
	return newOut
}

// WithSource overrides the file-based fragment extractor. The default
// chooses a PDF or HTML extractor from the file extension.
func (o *Outliner) WithSource(s extract.Source) *Outliner {
	newOut := o.clone()
	newOut.options.source = s
	return newOut
}

// MinHeadings overrides the minimum rule-based heading count below which
// the predictor fallback is consulted. The default derives from the page
// count: at least 3, or one per page.
func (o *Outliner) MinHeadings(n int) *Outliner {
	newOut := o.clone()
	newOut.options.minHeadings = n
	return newOut
}

// ============================================================================
// Terminal Operations (execute the pipeline and return results)
// ============================================================================

// Fragments extracts, merges, and deduplicates text fragments without
// classifying them. The result is in reading order: by page, then top to
// bottom, then left to right.
//
// Example:
//
//	frags, err := outliner.Open("document.pdf").Fragments()
func (o *Outliner) Fragments() ([]model.TextFragment, error) {
	if o.err != nil {
		return nil, o.err
	}

	raw, err := o.rawFragments()
	if err != nil {
		return nil, err
	}
	return o.merger().Merge(raw), nil
}

// Title extracts the document title.
//
// Example:
//
//	title, err := outliner.Open("document.pdf").Title()
func (o *Outliner) Title() (string, error) {
	res, err := o.run()
	if err != nil {
		return "", err
	}
	return res.title, nil
}

// Headings extracts the classified headings in document order. Headings
// include every detected occurrence; duplicates are preserved.
//
// Example:
//
//	headings, err := outliner.Open("document.pdf").Headings()
//	for _, h := range headings {
//	    fmt.Printf("[%s] %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
func (o *Outliner) Headings() ([]model.ClassifiedHeading, error) {
	res, err := o.run()
	if err != nil {
		return nil, err
	}
	return res.headings, nil
}

// Flat extracts the title and a flat list of headings.
//
// Example:
//
//	flat, err := outliner.Open("document.pdf").Flat()
func (o *Outliner) Flat() (outline.FlatOutline, error) {
	res, err := o.run()
	if err != nil {
		return outline.FlatOutline{}, err
	}
	return outline.Flat(res.title, res.headings), nil
}

// Hierarchy extracts the title and a nested outline tree, with H2s
// nested under their preceding H1 and H3s under their preceding H2.
//
// Example:
//
//	root, err := outliner.Open("document.pdf").Hierarchy()
func (o *Outliner) Hierarchy() (*outline.Root, error) {
	res, err := o.run()
	if err != nil {
		return nil, err
	}
	return outline.Build(res.title, res.headings), nil
}

// Outline is the combined output of one pipeline run. Both output views
// derive from the same title and heading list, so they always agree.
type Outline struct {
	// Title is the selected document title.
	Title string

	// Headings are the classified headings in document order.
	Headings []model.ClassifiedHeading

	// ModelUsed reports whether the headings came from the model
	// fallback rather than the rule pass.
	ModelUsed bool
}

// Flat returns the flat outline view.
func (r *Outline) Flat() outline.FlatOutline {
	return outline.Flat(r.Title, r.Headings)
}

// Hierarchy returns the nested outline view.
func (r *Outline) Hierarchy() *outline.Root {
	return outline.Build(r.Title, r.Headings)
}

// Outline runs the pipeline once and returns the combined result.
// Callers needing more than one view of the same document should prefer
// this over separate terminal calls, which would re-extract and
// re-classify per call.
//
// Example:
//
//	res, err := outliner.Open("document.pdf").Outline()
//	flat, tree := res.Flat(), res.Hierarchy()
func (o *Outliner) Outline() (*Outline, error) {
	res, err := o.run()
	if err != nil {
		return nil, err
	}
	return &Outline{
		Title:     res.title,
		Headings:  res.headings,
		ModelUsed: res.modelUsed,
	}, nil
}

// ============================================================================
// Internal pipeline
// ============================================================================

// result holds the output of one pipeline run.
type result struct {
	fragments []model.TextFragment
	baseline  float64
	headings  []model.ClassifiedHeading
	title     string
	modelUsed bool
}

// run executes the full pipeline: extract, merge, estimate the baseline,
// classify, fall back to the predictor when rules find too little, and
// select the title.
func (o *Outliner) run() (*result, error) {
	if o.err != nil {
		return nil, o.err
	}

	raw, err := o.rawFragments()
	if err != nil {
		return nil, err
	}

	merged := o.merger().Merge(raw)
	baseline := merge.EstimateBaseline(merged)

	classifier := classify.NewClassifierWithConfig(classify.Config{
		MinRight:  o.options.minRight,
		MaxBottom: o.options.maxBottom,
	})

	headings := classifier.Classify(merged, baseline)
	modelUsed := false

	if o.options.predictor != nil && len(headings) < o.minHeadings(merged) {
		modelHeadings, err := classifier.ClassifyWithPredictor(o.options.ctx, merged, o.options.predictor)
		if err != nil {
			return nil, fmt.Errorf("model classification: %w", err)
		}
		headings = modelHeadings
		modelUsed = true
	}

	return &result{
		fragments: merged,
		baseline:  baseline,
		headings:  headings,
		title:     classify.SelectTitle(merged, headings),
		modelUsed: modelUsed,
	}, nil
}

// rawFragments returns the unmerged fragments from the configured source.
func (o *Outliner) rawFragments() ([]model.TextFragment, error) {
	if o.haveFragments {
		return o.fragments, nil
	}
	if o.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	src := o.options.source
	if src == nil {
		switch strings.ToLower(filepath.Ext(o.filename)) {
		case ".html", ".htm":
			src = extract.NewHTMLExtractor()
		default:
			src = extract.NewPDFExtractor()
		}
	}

	return src.Extract(o.filename)
}

// merger builds a fragment merger from the configured line tolerance.
func (o *Outliner) merger() *merge.Merger {
	return merge.NewMergerWithConfig(merge.Config{LineTolerance: o.options.lineTolerance})
}

// minHeadings resolves the fallback threshold for the given fragments.
func (o *Outliner) minHeadings(fragments []model.TextFragment) int {
	if o.options.minHeadings > 0 {
		return o.options.minHeadings
	}
	return classify.MinHeadings(model.PageCount(fragments))
}
