// Package entity defines domain entities for the whiteboard.
package entity

import "math"

// Point is a pair of coordinates. Pointer events are in screen pixels,
// note positions are canvas-space (before the board zoom is applied).
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Size holds width and height.
type Size struct {
	Width, Height float64
}

// Grow returns the size extended by the delta on each axis.
func (s Size) Grow(delta Point) Size {
	return Size{Width: s.Width + delta.X, Height: s.Height + delta.Y}
}

// Scale multiplies both dimensions by f.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Rect is a rendered bounding rectangle: top-left corner plus dimensions.
type Rect struct {
	Point
	Size
}

// TopLeft returns the rectangle origin.
func (r Rect) TopLeft() Point {
	return r.Point
}

// Contains reports whether p lies within the rectangle (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// SizeConstraints holds the minimum dimensions of a resizable element.
type SizeConstraints struct {
	MinWidth  float64
	MinHeight float64
}

// Default minimum dimensions, in screen pixels.
const (
	DefaultMinWidth  = 192
	DefaultMinHeight = 192

	AudioMinWidth  = 256
	AudioMinHeight = 400
)

// DefaultConstraints returns the minimum size of a sticky note.
func DefaultConstraints() SizeConstraints {
	return SizeConstraints{MinWidth: DefaultMinWidth, MinHeight: DefaultMinHeight}
}

// AudioConstraints returns the minimum size of an audio note.
func AudioConstraints() SizeConstraints {
	return SizeConstraints{MinWidth: AudioMinWidth, MinHeight: AudioMinHeight}
}

// Clamp raises each axis of s to at least the configured minimum.
func (c SizeConstraints) Clamp(s Size) Size {
	return Size{
		Width:  math.Max(c.MinWidth, s.Width),
		Height: math.Max(c.MinHeight, s.Height),
	}
}

// MinSize returns the smallest allowed size.
func (c SizeConstraints) MinSize() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}
