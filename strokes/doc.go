// Package strokes assembles validated stroke entities from decoded
// script input and commits them to the document.
//
// The [Assembler] owns the pipeline: take already-decoded coordinate
// streams (or a spline control stream, which it rasterizes first),
// validate the point count, resolve the stroke style against the live
// tool defaults, and hand the finished entity to a layer.
//
//	asm := strokes.NewAssembler(settings)
//	stroke, warnings, err := asm.FromSamples(xs, ys, pressures, override)
//	if stroke != nil {
//	    asm.Commit(layer, stroke)
//	}
//
// Length mismatches between the coordinate streams are errors: they
// indicate a script-author contract violation. A resulting sequence of
// fewer than two points is not an error; the stroke is discarded with a
// warning and nil is returned, because tiny degenerate input is an
// expected condition. A discarded stroke is never left attached to
// anything.
package strokes
