// Package outliner provides a fluent API for extracting a structured
// outline (title plus H1/H2/H3 headings) from PDF and HTML documents.
//
// Basic usage:
//
//	root, err := outliner.Open("document.pdf").Hierarchy()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(root.Title)
//
// With options:
//
//	flat, err := outliner.Open("report.pdf").
//	    LineTolerance(4).
//	    Zones(60, 720).
//	    Flat()
//
// For advanced use cases, the lower-level merge, classify, and outline
// packages are also available.
package outliner

import (
	"github.com/tsawler/outliner/model"
)

// Open opens a document file and returns an Outliner for fluent
// configuration. The file format is chosen by extension: ".html" and
// ".htm" are parsed as HTML, everything else as PDF.
//
// Example:
//
//	root, err := outliner.Open("document.pdf").Hierarchy()
func Open(filename string) *Outliner {
	return &Outliner{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromFragments creates an Outliner from already-extracted fragments,
// bypassing file reading entirely. This is useful when fragments come
// from a custom extractor or from a prior Fragments() call.
//
// Example:
//
//	root, err := outliner.FromFragments(frags).Hierarchy()
func FromFragments(fragments []model.TextFragment) *Outliner {
	return &Outliner{
		fragments:     append([]model.TextFragment(nil), fragments...),
		haveFragments: true,
		options:       defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	root := outliner.Must(outliner.Open("document.pdf").Hierarchy())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
