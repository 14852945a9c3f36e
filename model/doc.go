// Package model provides the shared data types for outline extraction.
//
// The central type is [TextFragment], a positioned run of text with font
// metadata as produced by the extract package (or by OCR fallback). The
// merge package turns raw fragments into clean, line-merged fragments;
// the classify package promotes some of them to [ClassifiedHeading]; and
// the outline package assembles classified headings into a nested tree.
//
// # Geometry
//
// Coordinates use a top-left origin with Y increasing downward, matching
// the convention of most text extraction tools:
//
//   - [Rect] - bounding box with corner coordinates and union/validity helpers
//   - [Point] - 2D point
//
// # Conventions
//
// Page numbers are zero-based everywhere. The [EmptyText] sentinel marks
// pages for which no text could be recovered; it flows through extraction
// so that page counts stay accurate, and is dropped during merging.
package model
