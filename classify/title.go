package classify

import "github.com/tsawler/outliner/model"

// DefaultTitle is used when no fragment provides a usable title
const DefaultTitle = "Untitled Document"

// titleCandidateWindow bounds how far into page 0 the fallback search
// looks for a title
const titleCandidateWindow = 10

// SelectTitle picks the document title from merged fragments and the
// classified headings. Candidates are tried in order, first non-empty
// match wins:
//
//  1. The H1 heading on page 0 whose source fragment has the largest
//     font size.
//  2. The largest-font fragment among the first 10 fragments on page 0.
//  3. The first non-blank fragment in the document.
//  4. DefaultTitle.
//
// Font size ties resolve to the first-encountered candidate.
func SelectTitle(fragments []model.TextFragment, headings []model.ClassifiedHeading) string {
	if len(fragments) == 0 {
		return DefaultTitle
	}

	// Map heading text back to its source fragment so heading
	// candidates can be ranked by font size.
	byText := make(map[string]model.TextFragment, len(fragments))
	for _, frag := range fragments {
		if _, ok := byText[frag.Text]; !ok {
			byText[frag.Text] = frag
		}
	}

	var best string
	bestSize := -1.0
	for _, h := range headings {
		if h.Level != model.LevelH1 || h.Page != 0 {
			continue
		}
		frag, ok := byText[h.Text]
		if !ok {
			continue
		}
		if frag.FontSize > bestSize {
			best = h.Text
			bestSize = frag.FontSize
		}
	}
	if best != "" {
		return best
	}

	// Fallback: largest-font fragment near the top of page 0.
	var candidate *model.TextFragment
	seen := 0
	for i := range fragments {
		if fragments[i].Page != 0 {
			continue
		}
		if seen >= titleCandidateWindow {
			break
		}
		if candidate == nil || fragments[i].FontSize > candidate.FontSize {
			candidate = &fragments[i]
		}
		seen++
	}
	if candidate != nil && !candidate.IsBlank() {
		return candidate.Text
	}

	// Final fallback: first non-blank fragment anywhere.
	for _, frag := range fragments {
		if !frag.IsBlank() {
			return frag.Text
		}
	}

	return DefaultTitle
}
