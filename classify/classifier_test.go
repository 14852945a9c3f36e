package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/tsawler/outliner/model"
)

func classifierFragment(text string, page int, box model.Rect, fontSize float64, bold bool) model.TextFragment {
	return model.TextFragment{
		Text:     text,
		Box:      box,
		FontSize: fontSize,
		Bold:     bold,
		Page:     page,
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinRight != 50 {
		t.Errorf("MinRight = %f, want 50", cfg.MinRight)
	}
	if cfg.MaxBottom != 742 {
		t.Errorf("MaxBottom = %f, want 742", cfg.MaxBottom)
	}
}

func TestClassifyRuleBased(t *testing.T) {
	c := NewClassifier()
	frags := []model.TextFragment{
		classifierFragment("1. Introduction", 0, model.NewRect(50, 100, 300, 120), 18, true),
		classifierFragment("This is body text.", 0, model.NewRect(50, 140, 300, 152), 12, false),
		classifierFragment("1.1 Background", 0, model.NewRect(50, 180, 300, 195), 14, false),
	}

	headings := c.Classify(frags, 12.0)
	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d: %v", len(headings), headings)
	}

	if headings[0].Text != "1. Introduction" || headings[0].Level != model.LevelH1 {
		t.Errorf("first heading = %q level %v, want H1 %q", headings[0].Text, headings[0].Level, "1. Introduction")
	}
	if headings[0].Label != model.LabelTitle {
		t.Errorf("H1 label = %q, want %q", headings[0].Label, model.LabelTitle)
	}
	if headings[0].Confidence != 0.9 {
		t.Errorf("confidence = %f, want 0.9", headings[0].Confidence)
	}
	if headings[0].Order != 0 {
		t.Errorf("H1 order = %d, want 0", headings[0].Order)
	}

	if headings[1].Text != "1.1 Background" || headings[1].Level != model.LevelH2 {
		t.Errorf("second heading = %q level %v, want H2 %q", headings[1].Text, headings[1].Level, "1.1 Background")
	}
	if headings[1].Label != model.LabelSectionTitle {
		t.Errorf("H2 label = %q, want %q", headings[1].Label, model.LabelSectionTitle)
	}
	if headings[1].Order != 1 {
		t.Errorf("H2 order = %d, want 1", headings[1].Order)
	}
}

func TestClassifyFiltersHeaderFooterZones(t *testing.T) {
	c := NewClassifier()
	frags := []model.TextFragment{
		// Degenerate sliver: right edge before MinRight.
		classifierFragment("1. Sliver", 0, model.NewRect(10, 100, 40, 120), 24, true),
		// Footer zone: extends below MaxBottom.
		classifierFragment("1. Footer", 0, model.NewRect(50, 740, 300, 760), 24, true),
		// Normal heading.
		classifierFragment("1. Kept", 0, model.NewRect(50, 100, 300, 120), 24, true),
	}

	headings := c.Classify(frags, 12.0)
	if len(headings) != 1 || headings[0].Text != "1. Kept" {
		t.Fatalf("expected only %q, got %v", "1. Kept", headings)
	}
}

func TestClassifyCustomZones(t *testing.T) {
	c := NewClassifierWithConfig(Config{MinRight: 50, MaxBottom: 1150})
	// A4 landscape-ish coordinates: would be filtered under the default
	// 742 cutoff, kept with a taller page.
	frag := classifierFragment("1. Deep Heading", 0, model.NewRect(50, 1000, 300, 1020), 24, true)

	headings := c.Classify([]model.TextFragment{frag}, 12.0)
	if len(headings) != 1 {
		t.Fatalf("expected heading kept with custom MaxBottom, got %v", headings)
	}

	if got := NewClassifier().Classify([]model.TextFragment{frag}, 12.0); len(got) != 0 {
		t.Fatalf("expected heading filtered with default MaxBottom, got %v", got)
	}
}

// stubPredictor returns canned predictions in order
type stubPredictor struct {
	predictions []Prediction
	err         error
	gotTexts    []string
}

func (s *stubPredictor) Predict(_ context.Context, texts []string) ([]Prediction, error) {
	s.gotTexts = texts
	if s.err != nil {
		return nil, s.err
	}
	return s.predictions, nil
}

func TestClassifyWithPredictor(t *testing.T) {
	c := NewClassifier()
	frags := []model.TextFragment{
		classifierFragment("Document Title", 0, model.NewRect(50, 100, 300, 130), 24, false),
		classifierFragment("Footer note", 0, model.NewRect(50, 745, 300, 760), 10, false),
		classifierFragment("Some Section", 0, model.NewRect(50, 200, 300, 215), 14, false),
		classifierFragment("Ordinary prose.", 0, model.NewRect(50, 260, 300, 272), 12, false),
		classifierFragment("Deep Subsection", 1, model.NewRect(50, 100, 300, 112), 12, false),
	}

	p := &stubPredictor{predictions: []Prediction{
		{Label: model.LabelTitle, Order: 0, Confidence: 0.95},
		{Label: model.LabelSectionTitle, Order: 2, Confidence: 0.8},
		{Label: model.LabelOther, Order: 5, Confidence: 0.7},
		{Label: model.LabelSectionTitle, Order: 5, Confidence: 0.6},
	}}

	headings, err := c.ClassifyWithPredictor(context.Background(), frags, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Footer fragment never reaches the predictor.
	wantTexts := []string{"Document Title", "Some Section", "Ordinary prose.", "Deep Subsection"}
	if len(p.gotTexts) != len(wantTexts) {
		t.Fatalf("predictor received %d texts, want %d", len(p.gotTexts), len(wantTexts))
	}
	for i, want := range wantTexts {
		if p.gotTexts[i] != want {
			t.Errorf("predictor text[%d] = %q, want %q", i, p.gotTexts[i], want)
		}
	}

	if len(headings) != 3 {
		t.Fatalf("expected 3 headings, got %d: %v", len(headings), headings)
	}
	if headings[0].Level != model.LevelH1 {
		t.Errorf("order 0 -> %v, want H1", headings[0].Level)
	}
	if headings[1].Level != model.LevelH2 {
		t.Errorf("order 2 -> %v, want H2", headings[1].Level)
	}
	if headings[2].Level != model.LevelH3 {
		t.Errorf("order 5 -> %v, want H3", headings[2].Level)
	}
	if headings[2].Page != 1 {
		t.Errorf("heading page = %d, want 1", headings[2].Page)
	}
}

func TestClassifyWithPredictorErrors(t *testing.T) {
	c := NewClassifier()
	frags := []model.TextFragment{
		classifierFragment("Title", 0, model.NewRect(50, 100, 300, 130), 24, false),
	}

	wantErr := errors.New("model unavailable")
	if _, err := c.ClassifyWithPredictor(context.Background(), frags, &stubPredictor{err: wantErr}); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped predictor error, got %v", err)
	}

	// Length mismatch is rejected.
	p := &stubPredictor{predictions: []Prediction{}}
	if _, err := c.ClassifyWithPredictor(context.Background(), frags, p); err == nil {
		t.Error("expected error on prediction count mismatch")
	}
}

func TestMinHeadings(t *testing.T) {
	tests := []struct {
		pages int
		want  int
	}{
		{0, 3},
		{1, 3},
		{3, 3},
		{4, 4},
		{12, 12},
	}

	for _, tt := range tests {
		if got := MinHeadings(tt.pages); got != tt.want {
			t.Errorf("MinHeadings(%d) = %d, want %d", tt.pages, got, tt.want)
		}
	}
}
