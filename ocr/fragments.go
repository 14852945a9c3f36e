package ocr

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// ocrFontSize is the nominal font size assigned to OCR output, which
// carries no font metrics of its own.
const ocrFontSize = 12.0

// PageFragments converts recognized page text into positioned fragments.
// OCR output has no per-line geometry, so every line shares the whole
// page box. An empty recognition result yields a single sentinel
// fragment so the page still counts toward the document's page total.
func PageFragments(text string, page int, pageWidth, pageHeight float64) []model.TextFragment {
	box := model.NewRect(0, 0, pageWidth, pageHeight)

	var fragments []model.TextFragment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fragments = append(fragments, model.TextFragment{
			Text:     line,
			Box:      box,
			FontSize: ocrFontSize,
			FontName: "OCR",
			Page:     page,
		})
	}

	if len(fragments) == 0 {
		fragments = append(fragments, model.TextFragment{
			Text:     model.EmptyText,
			Box:      box,
			FontSize: ocrFontSize,
			FontName: "OCR",
			Page:     page,
		})
	}

	return fragments
}
