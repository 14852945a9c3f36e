package model

import "strings"

// EmptyText is the sentinel text produced when a page yields nothing,
// typically when OCR runs on a blank or unreadable page. Fragments
// carrying it are discarded during merging and never become headings.
const EmptyText = "[EMPTY]"

// TextFragment represents a positioned run of text with font metadata,
// prior to line merging
type TextFragment struct {
	// Text is the fragment's content. Never empty for well-formed input.
	Text string `json:"text"`

	// Box is the fragment's bounding box in page coordinates
	Box Rect `json:"box"`

	// FontSize is the font size in points
	FontSize float64 `json:"font_size"`

	// FontName is the font identifier as reported by the source document
	FontName string `json:"font_name"`

	// Bold and Italic are derived from font metadata or naming convention
	Bold   bool `json:"bold"`
	Italic bool `json:"italic"`

	// Page is the zero-based page index
	Page int `json:"page"`

	// ID is a stable ordinal assigned at extraction time. It is used
	// only for traceability, never for ordering.
	ID int `json:"id"`
}

// IsBlank returns true if the fragment has no usable text, either because
// it is whitespace-only or because it carries the empty-page sentinel
func (f TextFragment) IsBlank() bool {
	t := strings.TrimSpace(f.Text)
	return t == "" || t == EmptyText
}

// WordCount returns the number of whitespace-separated words in the text
func (f TextFragment) WordCount() int {
	return len(strings.Fields(f.Text))
}

// PageCount returns the number of pages spanned by a fragment list,
// i.e. the highest page index plus one. Returns 0 for an empty list.
func PageCount(fragments []TextFragment) int {
	max := -1
	for _, f := range fragments {
		if f.Page > max {
			max = f.Page
		}
	}
	return max + 1
}
