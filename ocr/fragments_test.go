package ocr

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func TestPageFragments(t *testing.T) {
	text := "Chapter One\n\n  Some body text  \nMore text"
	frags := PageFragments(text, 2, 612, 792)

	want := []string{"Chapter One", "Some body text", "More text"}
	if len(frags) != len(want) {
		t.Fatalf("got %d fragments, want %d", len(frags), len(want))
	}
	for i, w := range want {
		if frags[i].Text != w {
			t.Errorf("fragment[%d] = %q, want %q", i, frags[i].Text, w)
		}
		if frags[i].Page != 2 {
			t.Errorf("fragment[%d] page = %d, want 2", i, frags[i].Page)
		}
		if frags[i].FontName != "OCR" {
			t.Errorf("fragment[%d] font = %q, want OCR", i, frags[i].FontName)
		}
		if frags[i].Box.X1 != 612 || frags[i].Box.Y1 != 792 {
			t.Errorf("fragment[%d] box = %+v, want whole page", i, frags[i].Box)
		}
	}
}

func TestPageFragmentsEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n  "} {
		frags := PageFragments(text, 0, 612, 792)
		if len(frags) != 1 {
			t.Fatalf("PageFragments(%q): got %d fragments, want 1 sentinel", text, len(frags))
		}
		if frags[0].Text != model.EmptyText {
			t.Errorf("PageFragments(%q): text = %q, want %q", text, frags[0].Text, model.EmptyText)
		}
		if !frags[0].IsBlank() {
			t.Errorf("sentinel fragment should be blank")
		}
	}
}
