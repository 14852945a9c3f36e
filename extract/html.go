package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/outliner/model"
)

// Synthetic page geometry for HTML documents, which have no native
// pagination. Blocks flow down a US Letter page and wrap to the next
// page before entering the footer zone.
const (
	htmlPageWidth  = 612.0
	htmlPageHeight = 792.0
	htmlMarginLeft = 72.0
	htmlMarginTop  = 72.0
	htmlLineGap    = 8.0
	htmlPageBreak  = 700.0
)

// htmlBlockStyle maps an element to a synthetic font size and weight
type htmlBlockStyle struct {
	fontSize float64
	bold     bool
}

var htmlStyles = map[string]htmlBlockStyle{
	"h1": {fontSize: 24, bold: true},
	"h2": {fontSize: 18, bold: true},
	"h3": {fontSize: 14, bold: true},
	"h4": {fontSize: 12, bold: true},
	"p":  {fontSize: 12},
	"li": {fontSize: 12},
}

// HTMLExtractor extracts text fragments from HTML documents, assigning
// synthetic positions and font sizes so HTML flows through the same
// pipeline as PDF content
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTML extractor
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses the HTML file and returns its block-level text as
// positioned fragments
func (e *HTMLExtractor) Extract(path string) ([]model.TextFragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html %s: %w", path, err)
	}
	defer f.Close()

	return e.ExtractReader(f)
}

// ExtractReader parses HTML from a reader and returns its block-level
// text as positioned fragments
func (e *HTMLExtractor) ExtractReader(r io.Reader) ([]model.TextFragment, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	w := &htmlWalker{y: htmlMarginTop}
	w.walk(doc)
	return w.fragments, nil
}

// htmlWalker lays out block elements top to bottom while traversing
type htmlWalker struct {
	fragments []model.TextFragment
	page      int
	y         float64
	nextID    int
}

func (w *htmlWalker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		if style, ok := htmlStyles[n.Data]; ok {
			if text := CleanText(nodeText(n)); text != "" {
				w.emit(text, style)
			}
			return // Block content consumed; skip children.
		}
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// emit appends one block as a fragment and advances the layout cursor
func (w *htmlWalker) emit(text string, style htmlBlockStyle) {
	if w.y+style.fontSize > htmlPageBreak {
		w.page++
		w.y = htmlMarginTop
	}

	box := model.NewRect(
		htmlMarginLeft,
		w.y,
		htmlPageWidth-htmlMarginLeft,
		w.y+style.fontSize,
	)

	w.fragments = append(w.fragments, model.TextFragment{
		Text:     text,
		Box:      box,
		FontSize: style.fontSize,
		FontName: "html",
		Bold:     style.bold,
		Page:     w.page,
		ID:       w.nextID,
	})
	w.nextID++
	w.y += style.fontSize + htmlLineGap
}

// nodeText concatenates all text nodes under n
func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}
