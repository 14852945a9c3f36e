package model

import "math"

// Point represents a 2D point in page coordinates
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in page coordinates.
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right corner,
// with Y increasing toward the bottom of the page.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewRect creates a rectangle from corner coordinates
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle's width
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 &&
		p.Y >= r.Y0 && p.Y <= r.Y1
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsValid returns true if the rectangle has finite coordinates and
// positive dimensions
func (r Rect) IsValid() bool {
	for _, v := range [4]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.X1 > r.X0 && r.Y1 > r.Y0
}

// InBounds returns true if all coordinates fall within a page of the
// given dimensions
func (r Rect) InBounds(pageWidth, pageHeight float64) bool {
	limit := math.Max(pageWidth, pageHeight)
	for _, v := range [4]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if v < 0 || v > limit {
			return false
		}
	}
	return true
}
