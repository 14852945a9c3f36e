package merge

import "github.com/tsawler/outliner/model"

// DefaultBaselineFontSize is returned when no fragment provides a usable
// font size
const DefaultBaselineFontSize = 12.0

// maxBaselineWords excludes long-paragraph outliers from the baseline
// sample; merged lines that run this long are not representative body
// lines
const maxBaselineWords = 50

// EstimateBaseline computes the document's dominant body-text font size:
// the most frequent size among non-bold fragments of fewer than 50 words.
// If no fragment qualifies, all fragments are considered; if the list is
// empty, DefaultBaselineFontSize is returned.
//
// Frequency ties resolve to the smallest font size, keeping the result
// deterministic regardless of input order.
func EstimateBaseline(fragments []model.TextFragment) float64 {
	if len(fragments) == 0 {
		return DefaultBaselineFontSize
	}

	counts := make(map[float64]int)
	for _, frag := range fragments {
		if frag.Bold || frag.WordCount() >= maxBaselineWords {
			continue
		}
		counts[frag.FontSize]++
	}

	if len(counts) == 0 {
		for _, frag := range fragments {
			counts[frag.FontSize]++
		}
	}
	if len(counts) == 0 {
		return DefaultBaselineFontSize
	}

	best := 0.0
	bestCount := 0
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return best
}
