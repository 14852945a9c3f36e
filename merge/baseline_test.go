package merge

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

func baselineFragment(text string, fontSize float64, bold bool) model.TextFragment {
	return model.TextFragment{
		Text:     text,
		Box:      model.NewRect(50, 100, 300, 112),
		FontSize: fontSize,
		Bold:     bold,
	}
}

func TestEstimateBaselineEmpty(t *testing.T) {
	if got := EstimateBaseline(nil); got != DefaultBaselineFontSize {
		t.Errorf("EstimateBaseline(nil) = %f, want %f", got, DefaultBaselineFontSize)
	}
}

func TestEstimateBaselineMostFrequent(t *testing.T) {
	frags := []model.TextFragment{
		baselineFragment("body line one", 11, false),
		baselineFragment("body line two", 11, false),
		baselineFragment("body line three", 11, false),
		baselineFragment("A Heading", 18, false),
	}

	if got := EstimateBaseline(frags); got != 11 {
		t.Errorf("EstimateBaseline() = %f, want 11", got)
	}
}

func TestEstimateBaselineExcludesBoldAndLongText(t *testing.T) {
	longText := strings.Repeat("word ", 60)
	frags := []model.TextFragment{
		baselineFragment("Bold Heading", 18, true),
		baselineFragment("Another Bold", 18, true),
		baselineFragment("Third Bold", 18, true),
		baselineFragment(longText, 9, false),
		baselineFragment(longText, 9, false),
		baselineFragment("normal body", 12, false),
	}

	// Bold and 50+ word fragments are excluded, leaving only the 12pt line.
	if got := EstimateBaseline(frags); got != 12 {
		t.Errorf("EstimateBaseline() = %f, want 12", got)
	}
}

func TestEstimateBaselineFallbackAllFragments(t *testing.T) {
	// Every fragment is bold, so the non-bold sample is empty and all
	// fragments are counted instead.
	frags := []model.TextFragment{
		baselineFragment("Bold one", 14, true),
		baselineFragment("Bold two", 14, true),
		baselineFragment("Bold three", 10, true),
	}

	if got := EstimateBaseline(frags); got != 14 {
		t.Errorf("EstimateBaseline() = %f, want 14", got)
	}
}

func TestEstimateBaselineTieSmallestWins(t *testing.T) {
	frags := []model.TextFragment{
		baselineFragment("a", 12, false),
		baselineFragment("b", 12, false),
		baselineFragment("c", 10, false),
		baselineFragment("d", 10, false),
	}

	if got := EstimateBaseline(frags); got != 10 {
		t.Errorf("EstimateBaseline() = %f, want 10 (smallest wins ties)", got)
	}
}
