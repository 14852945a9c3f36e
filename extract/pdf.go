package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/ocr"
)

// OCRClient recognizes text in a rendered page image. It matches the
// ocr package's client; tests substitute fakes.
type OCRClient interface {
	RecognizeImage(imageData []byte) (string, error)
}

// Rasterizer renders one page of a document to an image for OCR.
// Pages are zero-based.
type Rasterizer func(path string, page int) ([]byte, error)

// PDFConfig holds configuration for PDF extraction
type PDFConfig struct {
	// MinDigitalLines is the minimum number of digital text lines a page
	// must yield before OCR fallback is attempted for it.
	// Default: 5
	MinDigitalLines int

	// OCR recognizes text on pages with too little digital text.
	// When nil, such pages produce the empty-page sentinel instead.
	OCR OCRClient

	// Rasterize renders a page for OCR. Required when OCR is set.
	Rasterize Rasterizer
}

// DefaultPDFConfig returns sensible default configuration with OCR
// disabled
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		MinDigitalLines: 5,
	}
}

// PDFExtractor extracts positioned text fragments from PDF files
type PDFExtractor struct {
	config PDFConfig
}

// NewPDFExtractor creates an extractor with default configuration
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{config: DefaultPDFConfig()}
}

// NewPDFExtractorWithConfig creates an extractor with custom configuration
func NewPDFExtractorWithConfig(config PDFConfig) *PDFExtractor {
	if config.MinDigitalLines <= 0 {
		config.MinDigitalLines = DefaultPDFConfig().MinDigitalLines
	}
	return &PDFExtractor{config: config}
}

// Extract reads every page of the PDF and returns its text fragments in
// page order. Pages with fewer than MinDigitalLines digital lines go
// through OCR when configured; a page that still yields nothing produces
// a single empty-page sentinel fragment.
func (e *PDFExtractor) Extract(path string) ([]model.TextFragment, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var fragments []model.TextFragment
	nextID := 0

	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		pageIdx := pageNum - 1
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			fragments = append(fragments, sentinelFragment(pageIdx, 612, 792, &nextID))
			continue
		}

		pageW, pageH := pageSize(page)
		lines := digitalLines(page, pageW, pageH)

		if len(lines) >= e.config.MinDigitalLines {
			for _, line := range lines {
				line.Page = pageIdx
				line.ID = nextID
				nextID++
				fragments = append(fragments, line)
			}
			continue
		}

		fragments = append(fragments, e.ocrPage(path, pageIdx, pageW, pageH, &nextID)...)
	}

	return fragments, nil
}

// pageSize reads the page's MediaBox, defaulting to US Letter when the
// box is missing or degenerate
func pageSize(page pdflib.Page) (float64, float64) {
	box := page.V.Key("MediaBox")
	if box.Len() == 4 {
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return 612, 792
}

// digitalLines extracts the page's text runs and assembles them into
// line fragments in top-left coordinates. Malformed fragments are
// dropped.
func digitalLines(page pdflib.Page, pageW, pageH float64) []model.TextFragment {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	// Bucket raw text runs into visual lines by Y position.
	type lineBucket struct {
		y     float64
		texts []pdflib.Text
	}
	buckets := make(map[int]*lineBucket)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		key := int(math.Round(t.Y / 5.0))
		b, ok := buckets[key]
		if !ok {
			b = &lineBucket{y: t.Y}
			buckets[key] = b
		}
		b.texts = append(b.texts, t)
	}

	var lines []model.TextFragment
	for _, b := range buckets {
		if frag, ok := assembleLine(b.texts, pageH); ok {
			if frag.Box.IsValid() && frag.Box.InBounds(pageW, pageH) {
				lines = append(lines, frag)
			}
		}
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Box.Y0 != lines[j].Box.Y0 {
			return lines[i].Box.Y0 < lines[j].Box.Y0
		}
		return lines[i].Box.X0 < lines[j].Box.X0
	})

	return lines
}

// assembleLine joins one line's text runs left to right with smart
// spacing: a space is inserted when the horizontal gap between runs
// exceeds 30% of the font size. PDFs frequently emit a run per word or
// even per character, so naive joining would corrupt the text.
func assembleLine(texts []pdflib.Text, pageH float64) (model.TextFragment, bool) {
	if len(texts) == 0 {
		return model.TextFragment{}, false
	}

	sort.SliceStable(texts, func(i, j int) bool {
		return texts[i].X < texts[j].X
	})

	var b strings.Builder
	lastEndX := 0.0
	dominant := texts[0]
	minX, maxX := texts[0].X, texts[0].X+texts[0].W
	minY, maxY := texts[0].Y, texts[0].Y

	for i, t := range texts {
		if i > 0 {
			gap := t.X - lastEndX
			if gap > t.FontSize*0.3 {
				b.WriteString(" ")
			}
		}
		b.WriteString(t.S)
		lastEndX = t.X + t.W

		if t.FontSize > dominant.FontSize {
			dominant = t
		}
		minX = math.Min(minX, t.X)
		maxX = math.Max(maxX, t.X+t.W)
		minY = math.Min(minY, t.Y)
		maxY = math.Max(maxY, t.Y)
	}

	text := CleanText(b.String())
	if text == "" {
		return model.TextFragment{}, false
	}

	fontSize := dominant.FontSize
	if fontSize <= 0 {
		fontSize = 12
	}

	// PDF Y grows upward from the page bottom; convert to the top-left
	// origin used by the pipeline.
	box := model.NewRect(minX, pageH-maxY-fontSize, maxX, pageH-minY)

	fontName := strings.ToLower(dominant.Font)
	return model.TextFragment{
		Text:     text,
		Box:      box,
		FontSize: fontSize,
		FontName: fontName,
		Bold:     IsBoldFont(fontName),
		Italic:   IsItalicFont(fontName),
	}, true
}

// ocrPage runs the OCR fallback for one page. Any failure degrades to
// the empty-page sentinel; OCR problems never fail the document.
func (e *PDFExtractor) ocrPage(path string, pageIdx int, pageW, pageH float64, nextID *int) []model.TextFragment {
	if e.config.OCR == nil || e.config.Rasterize == nil {
		return []model.TextFragment{sentinelFragment(pageIdx, pageW, pageH, nextID)}
	}

	img, err := e.config.Rasterize(path, pageIdx)
	if err != nil {
		return []model.TextFragment{sentinelFragment(pageIdx, pageW, pageH, nextID)}
	}

	text, err := e.config.OCR.RecognizeImage(img)
	if err != nil {
		return []model.TextFragment{sentinelFragment(pageIdx, pageW, pageH, nextID)}
	}

	fragments := ocr.PageFragments(text, pageIdx, pageW, pageH)
	for i := range fragments {
		if !fragments[i].IsBlank() {
			fragments[i].Text = CleanText(fragments[i].Text)
		}
		fragments[i].ID = *nextID
		*nextID++
	}
	return fragments
}

// sentinelFragment marks a page that produced no usable text
func sentinelFragment(pageIdx int, pageW, pageH float64, nextID *int) model.TextFragment {
	frag := model.TextFragment{
		Text:     model.EmptyText,
		Box:      model.NewRect(0, 0, pageW, pageH),
		FontSize: 12,
		FontName: "OCR",
		Page:     pageIdx,
		ID:       *nextID,
	}
	*nextID++
	return frag
}

// IsBoldFont reports whether a font name indicates a bold face
func IsBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "bold") ||
		strings.Contains(name, "black") ||
		strings.Contains(name, "heavy") ||
		strings.Contains(name, "semibold") ||
		strings.Contains(name, "demibold")
}

// IsItalicFont reports whether a font name indicates an italic face
func IsItalicFont(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "italic") || strings.Contains(name, "oblique")
}
