package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/outliner/model"
)

// Score thresholds mapping heading scores to levels. A fragment scoring
// below H3Threshold is not a heading.
const (
	H1Threshold = 10
	H2Threshold = 7
	H3Threshold = 4
)

// Signal weights for the heading score. Font size relative to the body
// baseline is the primary indicator; numbering is the strongest content
// signal.
const (
	weightSizeLarge  = 5 // fontSize > 1.8 x baseline
	weightSizeMedium = 3 // 1.3 x baseline < fontSize <= 1.8 x baseline
	weightSizeSmall  = 2 // 1.1 x baseline < fontSize <= 1.3 x baseline
	weightBold       = 3
	weightAllCaps    = 2 // all-uppercase, more than one word
	weightNumbered   = 5 // leading outline marker ("1.", "2.1", "A.")
	weightBrevity    = 1 // fewer than 10 words
	weightNoPeriod   = 1 // does not end with a period
)

// numberedPattern matches leading numeric or letter outline markers
// followed by whitespace: "1. ", "2.1 ", "3.2.1 ", "A. ". The trailing
// dot is optional so both "1. " and "2.1 " forms count.
var numberedPattern = regexp.MustCompile(`^((\d+(\.\d+)*\.?)|([A-Z]\.))\s`)

// Score assigns an integer heading-likelihood score to a fragment given
// the document's body-text baseline font size. Higher scores indicate a
// higher likelihood of being a major heading. Pure function.
func Score(frag model.TextFragment, baseline float64) int {
	score := 0

	switch {
	case frag.FontSize > 1.8*baseline:
		score += weightSizeLarge
	case frag.FontSize > 1.3*baseline:
		score += weightSizeMedium
	case frag.FontSize > 1.1*baseline:
		score += weightSizeSmall
	}

	if frag.Bold {
		score += weightBold
	}

	if isAllUpper(frag.Text) && frag.WordCount() > 1 {
		score += weightAllCaps
	}

	if numberedPattern.MatchString(frag.Text) {
		score += weightNumbered
	}

	if frag.WordCount() < 10 {
		score += weightBrevity
	}

	if !strings.HasSuffix(frag.Text, ".") {
		score += weightNoPeriod
	}

	return score
}

// LevelForScore maps a heading score to a level band. Scores below the
// H3 threshold mean the fragment is not a heading.
func LevelForScore(score int) model.HeadingLevel {
	switch {
	case score >= H1Threshold:
		return model.LevelH1
	case score >= H2Threshold:
		return model.LevelH2
	case score >= H3Threshold:
		return model.LevelH3
	default:
		return model.LevelOther
	}
}

// isAllUpper reports whether the text contains at least one letter and
// no lowercase letters, mirroring the all-caps heading convention
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
