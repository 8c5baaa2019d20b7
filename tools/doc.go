// Package tools provides the live tool-default state and the attribute
// resolution cascade that fills unset stroke style fields.
//
// # Tool Defaults
//
// The [ToolDefaults] interface abstracts the application's current tool
// configuration:
//
//	type ToolDefaults interface {
//	    Tool(kind model.ToolKind) ToolInfo
//	}
//
// This mirrors how the rest of the module consumes collaborators: the
// resolver receives a read-only snapshot parameter instead of reaching
// for global state, so resolution policy can be tested deterministically.
//
// [Settings] is the concrete in-memory implementation, holding per-tool
// size, thickness tables, color, fill and line-style defaults along with
// the eraser and text tool state exposed to scripts via getToolInfo.
//
// # Resolution
//
// [Resolve] cascades each stroke style field, highest precedence first:
//
//  1. An explicitly provided value in the [Override].
//  2. The live default for the resolved tool kind.
//  3. A last-resort literal (only the tool kind itself: "pen").
//
// The tool kind is resolved before everything else, since every other
// default depends on it. Fill resolution is a three-way branch: explicit
// value verbatim, else the tool's fill opacity when filling is enabled,
// else no fill.
package tools
