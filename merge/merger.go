// Package merge reassembles raw positioned text fragments into clean,
// line-merged fragments suitable for heading classification.
//
// Text extraction tools frequently report a single visual line as several
// fragments (per word, or per font change), and sometimes report the same
// text more than once at overlapping positions. The [Merger] groups
// fragments into lines by vertical position, joins each line left to
// right, and removes per-page duplicates whose text is contained in a
// longer fragment on the same page.
package merge

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Config holds configuration for fragment merging
type Config struct {
	// LineTolerance is the vertical bucket size, in page coordinate
	// units, used to decide whether two fragments sit on the same line.
	// Two fragments share a line iff round(y0/LineTolerance) matches
	// on the same page.
	// Default: 5
	LineTolerance float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance: 5.0,
	}
}

// Merger merges fragmented text into coherent lines and de-duplicates
// repeated text per page
type Merger struct {
	config Config
}

// NewMerger creates a new merger with default configuration
func NewMerger() *Merger {
	return &Merger{config: DefaultConfig()}
}

// NewMergerWithConfig creates a merger with custom configuration
func NewMergerWithConfig(config Config) *Merger {
	if config.LineTolerance <= 0 {
		config.LineTolerance = DefaultConfig().LineTolerance
	}
	return &Merger{config: config}
}

// lineKey identifies a visual line: a page plus a vertical bucket
type lineKey struct {
	page   int
	bucket int
}

// Merge groups fragments into lines, joins each line's text, and removes
// duplicate or substring fragments per page. The result is sorted in
// reading order (page, then top-to-bottom, then left-to-right).
//
// Merge is a pure function of its input: it never mutates the given
// slice, and running it on its own output yields the same result.
func (m *Merger) Merge(fragments []model.TextFragment) []model.TextFragment {
	if len(fragments) == 0 {
		return nil
	}

	// Group fragments by page and approximate vertical line, dropping
	// blanks and empty-page sentinels.
	groups := make(map[lineKey][]model.TextFragment)
	for _, frag := range fragments {
		if frag.IsBlank() {
			continue
		}
		key := lineKey{
			page:   frag.Page,
			bucket: int(math.Round(frag.Box.Y0 / m.config.LineTolerance)),
		}
		groups[key] = append(groups[key], frag)
	}

	merged := make([]model.TextFragment, 0, len(groups))
	for _, group := range groups {
		if frag, ok := m.mergeLine(group); ok {
			merged = append(merged, frag)
		}
	}

	deduped := dedupeSubstrings(merged)

	sort.Slice(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Box.Y0 != b.Box.Y0 {
			return a.Box.Y0 < b.Box.Y0
		}
		return a.Box.X0 < b.Box.X0
	})

	return deduped
}

// mergeLine joins one line group into a single fragment. The merged box
// is the union of the group's boxes; typographic attributes come from the
// member with the largest font size (first encountered on a tie).
func (m *Merger) mergeLine(group []model.TextFragment) (model.TextFragment, bool) {
	if len(group) == 0 {
		return model.TextFragment{}, false
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Box.X0 < group[j].Box.X0
	})

	var parts []string
	for _, frag := range group {
		if t := strings.TrimSpace(frag.Text); t != "" {
			parts = append(parts, frag.Text)
		}
	}
	text := strings.Join(parts, " ")
	if strings.TrimSpace(text) == "" {
		return model.TextFragment{}, false
	}

	box := group[0].Box
	dominant := group[0]
	for _, frag := range group[1:] {
		box = box.Union(frag.Box)
		if frag.FontSize > dominant.FontSize {
			dominant = frag
		}
	}

	return model.TextFragment{
		Text:     text,
		Box:      box,
		FontSize: dominant.FontSize,
		FontName: dominant.FontName,
		Bold:     dominant.Bold,
		Italic:   dominant.Italic,
		Page:     dominant.Page,
		ID:       dominant.ID,
	}, true
}

// dedupeSubstrings drops any fragment whose text is contained in a
// previously accepted fragment's text on the same page. Fragments are
// considered longest-first so the containing fragment always survives.
func dedupeSubstrings(fragments []model.TextFragment) []model.TextFragment {
	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if len(a.Text) != len(b.Text) {
			return len(a.Text) > len(b.Text)
		}
		// Equal-length ties keep reading order for determinism.
		if a.Box.Y0 != b.Box.Y0 {
			return a.Box.Y0 < b.Box.Y0
		}
		return a.Box.X0 < b.Box.X0
	})

	seenOnPage := make(map[int][]string)
	var accepted []model.TextFragment

	for _, frag := range sorted {
		seen := seenOnPage[frag.Page]
		contained := false
		for _, prior := range seen {
			if strings.Contains(prior, frag.Text) {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		accepted = append(accepted, frag)
		seenOnPage[frag.Page] = append(seen, frag.Text)
	}

	return accepted
}
