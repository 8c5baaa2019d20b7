package spline

import (
	"errors"
	"fmt"

	"github.com/tsawler/inkscript/model"
)

// ErrMalformedSpline reports a control stream whose length is not a
// multiple of eight. No partial rasterization is attempted.
var ErrMalformedSpline = errors.New("spline: malformed control stream")

// valuesPerSegment is one cubic segment: 4 points of 2 coordinates.
const valuesPerSegment = 8

// Default flattening parameters. The tolerance is the maximum distance,
// in document units, a control point may sit from the chord before the
// segment is subdivided further.
const (
	DefaultTolerance = 0.25
	DefaultMaxDepth  = 16
)

// ControlQuad is one cubic Bezier segment: a start point, two control
// points and an end point. Quads exist only transiently during
// rasterization; they are never stored in the document.
type ControlQuad struct {
	Start, Ctrl1, Ctrl2, End model.Point
}

// Eval evaluates the cubic at parameter t in [0, 1] using the Bernstein
// form. The result carries no pressure data.
func (q ControlQuad) Eval(t float64) model.Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return model.NewPoint(
		mt3*q.Start.X+3*mt2*t*q.Ctrl1.X+3*mt*t2*q.Ctrl2.X+t3*q.End.X,
		mt3*q.Start.Y+3*mt2*t*q.Ctrl1.Y+3*mt*t2*q.Ctrl2.Y+t3*q.End.Y,
	)
}

// Subdivide splits the segment at t=0.5 into two halves using de
// Casteljau's construction.
func (q ControlQuad) Subdivide() (ControlQuad, ControlQuad) {
	p01 := mid(q.Start, q.Ctrl1)
	p12 := mid(q.Ctrl1, q.Ctrl2)
	p23 := mid(q.Ctrl2, q.End)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)

	return ControlQuad{Start: q.Start, Ctrl1: p01, Ctrl2: p012, End: m},
		ControlQuad{Start: m, Ctrl1: p123, Ctrl2: p23, End: q.End}
}

func mid(a, b model.Point) model.Point {
	return model.NewPoint((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// flatWithin reports whether both control points sit within distance
// tol of the start-end chord, i.e. whether the chord approximates the
// curve well enough.
func (q ControlQuad) flatWithin(tol float64) bool {
	tol2 := tol * tol
	return distSq(q.Ctrl1, q.Start, q.End) <= tol2 &&
		distSq(q.Ctrl2, q.Start, q.End) <= tol2
}

// distSq returns the squared distance from p to the segment a-b.
func distSq(p, a, b model.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		px := p.X - a.X
		py := p.Y - a.Y
		return px*px + py*py
	}
	cross := (p.X-a.X)*dy - (p.Y-a.Y)*dx
	return cross * cross / len2
}

// Flattener converts control streams into point sequences. The zero
// value is not useful; use [NewFlattener] or fill both fields.
type Flattener struct {
	// Tolerance is the flatness threshold. Values very close to zero
	// still terminate because of MaxDepth.
	Tolerance float64

	// MaxDepth bounds the recursive subdivision; a segment produces at
	// most 2^MaxDepth line pieces.
	MaxDepth int
}

// NewFlattener creates a flattener with the default parameters.
func NewFlattener() Flattener {
	return Flattener{Tolerance: DefaultTolerance, MaxDepth: DefaultMaxDepth}
}

// Rasterize converts a packed control stream into a flat point
// sequence: the concatenation, in input order, of every segment's
// flattened points. Each segment contributes its own start and end
// points. The stream length must be a multiple of eight.
func (f Flattener) Rasterize(stream []float64) ([]model.Point, error) {
	if len(stream)%valuesPerSegment != 0 {
		return nil, fmt.Errorf("%w: %d values, want a multiple of %d",
			ErrMalformedSpline, len(stream), valuesPerSegment)
	}

	var points []model.Point
	for i := 0; i < len(stream); i += valuesPerSegment {
		q := ControlQuad{
			Start: model.NewPoint(stream[i], stream[i+1]),
			Ctrl1: model.NewPoint(stream[i+2], stream[i+3]),
			Ctrl2: model.NewPoint(stream[i+4], stream[i+5]),
			End:   model.NewPoint(stream[i+6], stream[i+7]),
		}
		points = append(points, q.Start)
		points = f.flatten(q, 0, points)
	}
	return points, nil
}

// flatten appends the flattened form of q, excluding its start point,
// which the caller has already emitted.
func (f Flattener) flatten(q ControlQuad, depth int, out []model.Point) []model.Point {
	if depth >= f.MaxDepth || q.flatWithin(f.Tolerance) {
		return append(out, q.End)
	}
	left, right := q.Subdivide()
	out = f.flatten(left, depth+1, out)
	return f.flatten(right, depth+1, out)
}

// Rasterize converts a control stream with the default flattener.
func Rasterize(stream []float64) ([]model.Point, error) {
	return NewFlattener().Rasterize(stream)
}
