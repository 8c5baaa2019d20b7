package model

import "math"

// NoPressure is the reserved pressure value meaning "no pressure data".
// Points carrying it render at the stroke's uniform width.
const NoPressure = -1.0

// Point represents a 2D point with an optional pressure channel.
// A Point is immutable once created.
type Point struct {
	X        float64
	Y        float64
	Pressure float64
}

// NewPoint creates a point without pressure data.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Pressure: NoPressure}
}

// NewPressurePoint creates a point with an explicit pressure value.
func NewPressurePoint(x, y, pressure float64) Point {
	return Point{X: x, Y: y, Pressure: pressure}
}

// HasPressure reports whether the point carries pressure data.
func (p Point) HasPressure() bool {
	return p.Pressure != NoPressure
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle).
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints creates a bounding box from two points.
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Union returns the union of two bounding boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// ExpandToPoint grows the bounding box just enough to contain p.
func (b BBox) ExpandToPoint(p Point) BBox {
	return b.Union(NewBBoxFromPoints(p, p))
}

// IsValid returns true if the bounding box has non-negative dimensions.
func (b BBox) IsValid() bool {
	return b.Width >= 0 && b.Height >= 0
}
