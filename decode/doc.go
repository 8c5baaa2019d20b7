// Package decode converts guest-supplied Lua containers into typed Go
// values, failing fast on shape or element type mismatches.
//
// Guest scripts pass loosely typed tables; this package is the single
// place where "is this field present and well-typed" is decided, so the
// defaulting policy elsewhere never has to inspect dynamic values.
//
// # Sequences
//
//	xs, err := decode.NumericSequence(tbl.RawGetString("x"))
//
// [NumericSequence] and [StringSequence] accept an ordered Lua array and
// return its elements in natural 1..N iteration order. A non-table value
// is reported as [ErrNotSequence]; an element of the wrong type is
// reported as [ErrBadElement] together with its 1-based index. Neither
// function mutates the container, and no partial result escapes on
// failure.
//
// # Style Overrides
//
// [StyleOverride] reads the optional stroke attribute keys (tool, width,
// color, fill, lineStyle) from a request table into a [tools.Override],
// tracking which fields were actually provided. Unrecognized keys are
// ignored. The color key accepts either a packed integer or an SVG 1.1
// color name.
package decode
