// Package model provides the in-memory representation of the annotated
// document that guest scripts operate on.
//
// This package defines the data structures shared by the rest of the
// module: the document tree (document, pages, layers) and the stroke
// elements committed to it, together with the geometric and stylistic
// vocabulary those elements carry.
//
// # Document Structure
//
// The [Document] type represents the open document with its pages and the
// current page selection:
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage(595.28, 841.89))
//	layer := doc.CurrentPage().SelectedLayer()
//
// Each [Page] contains dimensions, a background name, and one or more
// [Layer] values. Exactly one layer per page is selected at any time; new
// elements are appended to the selected layer.
//
// # Elements
//
// Page content implements the [Element] interface. The only concrete type
// at the moment is [Stroke], an ordered sequence of at least two points
// with a fully resolved [StrokeStyle]. A stroke is owned by whoever built
// it until it is handed to a layer via [Layer.Append]; after that the
// layer owns it.
//
// # Geometry
//
//   - [Point] - 2D point with an optional pressure channel
//   - [BBox] - bounding box with union and containment calculations
//
// The reserved pressure value [NoPressure] marks points without pressure
// data; such points render at uniform width.
//
// # Style
//
//   - [StrokeStyle] - the fully resolved appearance of a stroke
//   - [LineStyle] - a dash pattern, parsed from and formatted to the
//     pattern names understood by guest scripts
//
// # Warnings
//
// Non-fatal conditions (degenerate geometry, unknown tool names) are
// reported as [Warning] values rather than errors; callers collect and
// surface them however they see fit.
package model
