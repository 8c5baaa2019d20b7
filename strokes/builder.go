package strokes

import (
	"errors"
	"fmt"

	"github.com/tsawler/inkscript/model"
	"github.com/tsawler/inkscript/spline"
	"github.com/tsawler/inkscript/tools"
)

// ErrLengthMismatch reports coordinate streams of unequal length.
var ErrLengthMismatch = errors.New("strokes: length mismatch")

// minPoints is the smallest point count that forms a stroke.
const minPoints = 2

// Assembler builds stroke entities from decoded script input. It reads
// the live tool defaults during style resolution but never mutates
// them.
type Assembler struct {
	defaults  tools.ToolDefaults
	flattener spline.Flattener
}

// NewAssembler creates an assembler resolving styles against defs and
// rasterizing splines with the default flattener.
func NewAssembler(defs tools.ToolDefaults) *Assembler {
	return &Assembler{
		defaults:  defs,
		flattener: spline.NewFlattener(),
	}
}

// SetFlattener replaces the spline flattener.
func (a *Assembler) SetFlattener(f spline.Flattener) {
	a.flattener = f
}

// FromSamples builds a stroke from parallel coordinate streams. A nil
// pressures slice is legal and yields the no-pressure sentinel for every
// point; a non-nil pressures slice must match xs exactly. xs and ys
// must be of equal length.
//
// A nil stroke with a nil error means the input was degenerate (fewer
// than two points); the returned warnings describe why.
func (a *Assembler) FromSamples(xs, ys, pressures []float64, ov tools.Override) (*model.Stroke, []model.Warning, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: x has %d values, y has %d",
			ErrLengthMismatch, len(xs), len(ys))
	}
	if pressures != nil && len(pressures) != len(xs) {
		return nil, nil, fmt.Errorf("%w: pressure has %d values, want %d",
			ErrLengthMismatch, len(pressures), len(xs))
	}

	var warnings []model.Warning
	if pressures == nil {
		warnings = append(warnings, model.Warningf(model.WarnNoPressure,
			"no pressure data supplied, assuming uniform width"))
	}

	points := make([]model.Point, 0, len(xs))
	for i := range xs {
		pressure := model.NoPressure
		if pressures != nil {
			pressure = pressures[i]
		}
		// The first decoded stream maps to the vertical axis and the
		// second to the horizontal axis. Scripts in the wild depend on
		// this mapping; do not "fix" it.
		points = append(points, model.NewPressurePoint(ys[i], xs[i], pressure))
	}

	return a.finish(points, ov, warnings)
}

// FromSpline builds a stroke from a packed cubic control stream,
// rasterizing it first. The stream length must be a multiple of eight;
// a truncated segment is an error before any rasterization occurs.
func (a *Assembler) FromSpline(stream []float64, ov tools.Override) (*model.Stroke, []model.Warning, error) {
	points, err := a.flattener.Rasterize(stream)
	if err != nil {
		return nil, nil, err
	}
	return a.finish(points, ov, nil)
}

// finish applies the point-count gate, resolves the style and builds
// the entity. Below the gate the points are dropped and nil is
// returned; nothing partially built survives.
func (a *Assembler) finish(points []model.Point, ov tools.Override, warnings []model.Warning) (*model.Stroke, []model.Warning, error) {
	if len(points) < minPoints {
		warnings = append(warnings, model.Warningf(model.WarnDegenerateStroke,
			"stroke shorter than %d points, discarding (has %d)", minPoints, len(points)))
		return nil, warnings, nil
	}

	style, styleWarnings := tools.Resolve(ov, a.defaults)
	warnings = append(warnings, styleWarnings...)

	stroke := model.NewStroke()
	for _, p := range points {
		stroke.AddPoint(p)
	}
	stroke.SetStyle(style)
	return stroke, warnings, nil
}

// Commit transfers ownership of a finished stroke to a layer, appending
// it at the end of the layer's element order.
func (a *Assembler) Commit(layer *model.Layer, stroke *model.Stroke) {
	layer.Append(stroke)
}
