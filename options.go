package inkscript

import "github.com/tsawler/inkscript/spline"

// Options holds engine configuration.
type Options struct {
	// FlattenTolerance is the flatness threshold used when rasterizing
	// spline input, in document units.
	FlattenTolerance float64

	// FlattenMaxDepth bounds the recursive subdivision per segment.
	FlattenMaxDepth int
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() Options {
	return Options{
		FlattenTolerance: spline.DefaultTolerance,
		FlattenMaxDepth:  spline.DefaultMaxDepth,
	}
}
