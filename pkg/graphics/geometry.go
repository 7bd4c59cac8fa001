package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
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

// Deflate returns the rect shrunk by delta on every side.
func (r Rect) Deflate(delta float64) Rect {
	return Rect{
		Left:   r.Left + delta,
		Top:    r.Top + delta,
		Right:  r.Right - delta,
		Bottom: r.Bottom - delta,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
