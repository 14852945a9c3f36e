package outline

import "github.com/tsawler/outliner/model"

// FlatEntry is one heading in the flat outline schema
type FlatEntry struct {
	// Level is "H1", "H2" or "H3"
	Level string `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the zero-based page index
	Page int `json:"page"`
}

// FlatOutline is the flat output schema: one entry per classified
// heading in document order, no nesting
type FlatOutline struct {
	Title   string      `json:"title"`
	Outline []FlatEntry `json:"outline"`
}

// Flat builds the flat outline from the ordered heading list
func Flat(title string, headings []model.ClassifiedHeading) FlatOutline {
	entries := make([]FlatEntry, 0, len(headings))
	for _, h := range headings {
		entries = append(entries, FlatEntry{
			Level: h.Level.String(),
			Text:  h.Text,
			Page:  h.Page,
		})
	}
	return FlatOutline{Title: title, Outline: entries}
}
