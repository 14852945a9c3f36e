// Package extract turns source documents into positioned text fragments.
//
// Two sources are provided: [PDFExtractor] reads digital text from PDF
// files with an OCR fallback for image-only pages, and [HTMLExtractor]
// maps HTML heading and paragraph elements onto synthetic positions and
// font sizes so that HTML documents flow through the same pipeline.
//
// Extraction failures are soft: a document that cannot be opened or
// parsed yields an error the caller logs and skips, and a page that
// yields nothing produces a single [model.EmptyText] sentinel fragment
// so page counts stay accurate. Malformed fragments (out-of-bounds or
// non-finite boxes) are dropped here and never reach the pipeline.
package extract

import "github.com/tsawler/outliner/model"

// Source extracts positioned text fragments from a document on disk
type Source interface {
	Extract(path string) ([]model.TextFragment, error)
}
