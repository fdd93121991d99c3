// Package geometry provides the 2-D value types the layout and focus
// engines compute with. All coordinates are in abstract layout units;
// the host decides what a unit maps to on screen.
package geometry

import "math"

// Offset represents a 2D point or vector in layout coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in layout units.
type Size struct {
	Width  float64
	Height float64
}

// IsFinite reports whether both dimensions are finite numbers.
func (s Size) IsFinite() bool {
	return !math.IsNaN(s.Width) && !math.IsInf(s.Width, 0) &&
		!math.IsNaN(s.Height) && !math.IsInf(s.Height, 0)
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsValid reports whether the rect has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

// OverlapsHorizontally reports whether the horizontal spans of the two
// rectangles intersect. Touching edges do not count as overlap.
func (r Rect) OverlapsHorizontally(other Rect) bool {
	return r.Left < other.Right && r.Right > other.Left
}

// VerticalOverlap returns the length of the shared vertical span between
// the two rectangles, or 0 when they do not overlap vertically.
func (r Rect) VerticalOverlap(other Rect) float64 {
	overlap := math.Min(r.Bottom, other.Bottom) - math.Max(r.Top, other.Top)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// NearlyEqual reports whether two scalars are within the given tolerance.
func NearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
