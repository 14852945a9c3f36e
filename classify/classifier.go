// Package classify turns merged text fragments into classified headings.
//
// Two classification paths exist. The rule-based path scores each
// fragment from visual and content cues ([Score]) and is fully
// deterministic. The model path delegates to an external [Predictor]
// and maps its predictions onto heading levels. Both paths share the
// same header/footer zone filtering and emit headings in document order.
package classify

import (
	"context"
	"fmt"

	"github.com/tsawler/outliner/model"
)

// ruleConfidence is the confidence assigned to rule-based headings;
// the decision is deterministic, so it is fixed and high
const ruleConfidence = 0.9

// Config holds configuration for heading classification
type Config struct {
	// MinRight excludes fragments whose right edge falls short of this
	// X coordinate. Such fragments are degenerate slivers, typically
	// margin artifacts.
	// Default: 50
	MinRight float64

	// MaxBottom excludes fragments extending below this Y coordinate,
	// the usual footer zone on a US Letter portrait page. Adjust for
	// other page sizes.
	// Default: 742
	MaxBottom float64
}

// DefaultConfig returns sensible default configuration, tuned for a
// 612x792 point portrait page
func DefaultConfig() Config {
	return Config{
		MinRight:  50.0,
		MaxBottom: 742.0,
	}
}

// Classifier filters header/footer-zone noise and classifies the
// remaining fragments as headings
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config Config) *Classifier {
	if config.MinRight == 0 && config.MaxBottom == 0 {
		config = DefaultConfig()
	}
	return &Classifier{config: config}
}

// inZone reports whether a fragment survives header/footer filtering
func (c *Classifier) inZone(frag model.TextFragment) bool {
	return frag.Box.X1 >= c.config.MinRight && frag.Box.Y1 <= c.config.MaxBottom
}

// Classify runs the rule-based path: each fragment outside the
// header/footer zones is scored against the baseline font size, and
// fragments clearing the H3 threshold become headings. Output order
// follows input (document) order.
func (c *Classifier) Classify(fragments []model.TextFragment, baseline float64) []model.ClassifiedHeading {
	var headings []model.ClassifiedHeading

	for i, frag := range fragments {
		if !c.inZone(frag) {
			continue
		}

		level := LevelForScore(Score(frag, baseline))
		if level == model.LevelOther {
			continue
		}

		label := model.LabelSectionTitle
		if level == model.LevelH1 {
			label = model.LabelTitle
		}

		headings = append(headings, model.ClassifiedHeading{
			ID:         i + 1,
			Label:      label,
			Text:       frag.Text,
			Page:       frag.Page,
			Box:        frag.Box,
			Level:      level,
			Confidence: ruleConfidence,
			Order:      int(level) - 1,
		})
	}

	return headings
}

// ClassifyWithPredictor runs the model path: header/footer-filtered
// fragment texts are sent to the predictor, and fragments labeled
// "title" or "section-title" become headings with the level derived
// from the predicted order (0-1 H1, 2-3 H2, otherwise H3).
func (c *Classifier) ClassifyWithPredictor(ctx context.Context, fragments []model.TextFragment, p Predictor) ([]model.ClassifiedHeading, error) {
	var kept []model.TextFragment
	var ids []int
	for i, frag := range fragments {
		if !c.inZone(frag) {
			continue
		}
		kept = append(kept, frag)
		ids = append(ids, i+1)
	}
	if len(kept) == 0 {
		return nil, nil
	}

	texts := make([]string, len(kept))
	for i, frag := range kept {
		texts[i] = frag.Text
	}

	predictions, err := p.Predict(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("predict headings: %w", err)
	}
	if len(predictions) != len(kept) {
		return nil, fmt.Errorf("predictor returned %d predictions for %d texts", len(predictions), len(kept))
	}

	var headings []model.ClassifiedHeading
	for i, pred := range predictions {
		if pred.Label != model.LabelTitle && pred.Label != model.LabelSectionTitle {
			continue
		}

		headings = append(headings, model.ClassifiedHeading{
			ID:         ids[i],
			Label:      pred.Label,
			Text:       kept[i].Text,
			Page:       kept[i].Page,
			Box:        kept[i].Box,
			Level:      levelForOrder(pred.Order),
			Confidence: pred.Confidence,
			Order:      pred.Order,
		})
	}

	return headings, nil
}

// levelForOrder maps a predicted order onto fixed level bands
func levelForOrder(order int) model.HeadingLevel {
	switch {
	case order <= 1:
		return model.LevelH1
	case order <= 3:
		return model.LevelH2
	default:
		return model.LevelH3
	}
}

// MinHeadings returns the minimum number of rule-based headings expected
// for a document of the given page count: at least 3, or one per page.
// Callers fall back to the model path below this threshold.
func MinHeadings(pageCount int) int {
	if pageCount > 3 {
		return pageCount
	}
	return 3
}
