package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText normalizes extracted text before it enters the pipeline:
// Unicode is normalized to NFC, runs of three or more identical
// characters collapse to a single one (a common artifact of decorative
// rules and broken OCR), and whitespace is collapsed to single spaces
// and trimmed. Runs of exactly two characters are left alone so words
// like "letter" survive.
func CleanText(text string) string {
	runes := []rune(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(runes))

	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			b.WriteRune(runes[i])
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(runes[i])
			}
		}
		i = j
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
