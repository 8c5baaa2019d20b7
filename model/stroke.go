package model

import "golang.org/x/exp/slices"

// ToolKind identifies the stroke style family a stroke was drawn with.
type ToolKind int

const (
	ToolPen ToolKind = iota
	ToolHighlighter
)

func (tk ToolKind) String() string {
	switch tk {
	case ToolHighlighter:
		return "highlighter"
	default:
		return "pen"
	}
}

// NoFill is the reserved fill opacity meaning "no fill".
const NoFill = -1

// StrokeStyle is the fully resolved appearance of a stroke. It is only
// ever produced by the attribute resolver; a stroke never carries a
// partially populated style.
type StrokeStyle struct {
	Kind        ToolKind
	Width       float64 // always > 0
	Color       uint32  // packed RGB or ARGB, as supplied by the script
	Fill        int     // NoFill, or opacity in [0,255]
	LineStyle   LineStyle
	DrawingType string
}

// ElementType represents the type of a layer element.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeStroke
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeStroke:
		return "Stroke"
	default:
		return "Unknown"
	}
}

// Element is the interface for all layer elements.
type Element interface {
	Type() ElementType
	BoundingBox() BBox
}

// Stroke is an ordered sequence of at least two points with a resolved
// style. Until it is appended to a layer it is owned by its builder.
type Stroke struct {
	points []Point
	style  StrokeStyle
}

// NewStroke creates an empty stroke.
func NewStroke() *Stroke {
	return &Stroke{}
}

// AddPoint appends a point to the stroke.
func (s *Stroke) AddPoint(p Point) {
	s.points = append(s.points, p)
}

// PointCount returns the number of points in the stroke.
func (s *Stroke) PointCount() int {
	return len(s.points)
}

// Point returns the i-th point of the stroke.
func (s *Stroke) Point(i int) Point {
	return s.points[i]
}

// Points returns a copy of the stroke's point sequence.
func (s *Stroke) Points() []Point {
	return slices.Clone(s.points)
}

// SetStyle attaches a resolved style to the stroke.
func (s *Stroke) SetStyle(style StrokeStyle) {
	s.style = style
}

// Style returns the stroke's resolved style.
func (s *Stroke) Style() StrokeStyle {
	return s.style
}

// Type implements Element.
func (s *Stroke) Type() ElementType {
	return ElementTypeStroke
}

// BoundingBox returns the tight axis-aligned bounding box of the
// stroke's points. The stroke width is not taken into account.
func (s *Stroke) BoundingBox() BBox {
	if len(s.points) == 0 {
		return BBox{}
	}
	box := NewBBoxFromPoints(s.points[0], s.points[0])
	for _, p := range s.points[1:] {
		box = box.ExpandToPoint(p)
	}
	return box
}
