// Package spline converts packed cubic Bezier control data into flat
// point sequences suitable for stroke rendering.
//
// Guest scripts describe curves as a single numeric stream of eight
// values per segment:
//
//	startX, startY, ctrl1X, ctrl1Y, ctrl2X, ctrl2Y, endX, endY, ...
//
// [Rasterize] partitions the stream into [ControlQuad] segments and
// flattens each one by recursive de Casteljau subdivision: a segment is
// split in half until the control points sit within a flatness threshold
// of the chord, or a recursion cutoff is reached. Each segment always
// contributes its own start and end points, so consecutive segments join
// without gaps. Curve input carries no pressure channel; every emitted
// point has the no-pressure sentinel.
package spline
