// Package inkscript embeds a Lua scripting surface into a stroke-based
// document editor.
//
// Guest scripts receive an `app` table whose functions construct
// vector-graphics strokes inside the host document, inspect tool
// defaults and document structure, and call back into host UI
// facilities.
//
// Basic usage:
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage(595.28, 841.89))
//
//	engine := inkscript.New(doc, tools.NewSettings())
//	defer engine.Close()
//
//	err := engine.Run(`
//	    app.addStroke({
//	        ["x"] = {100, 120, 140},
//	        ["y"] = {200, 210, 200},
//	        ["tool"] = "pen",
//	        ["width"] = 1.4,
//	    })
//	`)
//	if err != nil {
//	    // script-fatal error (malformed input shape)
//	}
//	if ws := engine.Warnings(); len(ws) > 0 {
//	    log.Println(inkscript.FormatWarnings(ws))
//	}
//
// Script-fatal conditions (wrong container shapes, length mismatches,
// truncated spline segments) abort the script and surface as the error
// from [Engine.Run]. Recoverable conditions (degenerate strokes,
// unknown tool names) complete normally and accumulate as warnings.
//
// The engine is single-threaded: every operation runs to completion on
// the calling goroutine, and the host must not mutate the document or
// the tool settings while a script call is in flight.
package inkscript

import (
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/exp/slices"

	"github.com/tsawler/inkscript/model"
	"github.com/tsawler/inkscript/spline"
	"github.com/tsawler/inkscript/strokes"
	"github.com/tsawler/inkscript/tools"
)

// Engine hosts a Lua state with the `app` function table registered.
// One engine serves one document; it must be closed when done.
type Engine struct {
	state    *lua.LState
	doc      *model.Document
	settings *tools.Settings
	host     Host
	asm      *strokes.Assembler
	options  Options

	// Warnings accumulated across script runs.
	warnings []model.Warning

	// Menu entries registered by scripts during initUi.
	menus []MenuEntry
}

// New creates an engine for the given document and tool settings, with
// default options and a no-op host.
func New(doc *model.Document, settings *tools.Settings) *Engine {
	return NewWithOptions(doc, settings, DefaultOptions())
}

// NewWithOptions creates an engine with explicit options.
func NewWithOptions(doc *model.Document, settings *tools.Settings, opts Options) *Engine {
	e := &Engine{
		state:    lua.NewState(),
		doc:      doc,
		settings: settings,
		host:     NopHost{},
		asm:      strokes.NewAssembler(settings),
		options:  opts,
	}
	e.asm.SetFlattener(spline.Flattener{
		Tolerance: opts.FlattenTolerance,
		MaxDepth:  opts.FlattenMaxDepth,
	})
	e.register()
	return e
}

// SetHost replaces the host collaborator. Pass nil to restore the
// no-op host.
func (e *Engine) SetHost(h Host) {
	if h == nil {
		h = NopHost{}
	}
	e.host = h
}

// Run executes a script source string. The returned error is non-nil
// only for script-fatal conditions; check [Engine.Warnings] for
// recoverable diagnostics.
func (e *Engine) Run(source string) error {
	return e.state.DoString(source)
}

// RunFile executes a script file.
func (e *Engine) RunFile(path string) error {
	return e.state.DoFile(path)
}

// Close releases the underlying Lua state.
func (e *Engine) Close() {
	e.state.Close()
}

// Document returns the document the engine operates on.
func (e *Engine) Document() *model.Document {
	return e.doc
}

// Settings returns the tool settings the engine resolves against.
func (e *Engine) Settings() *tools.Settings {
	return e.settings
}

// Warnings returns a copy of the warnings accumulated so far.
func (e *Engine) Warnings() []Warning {
	return slices.Clone(e.warnings)
}

// ResetWarnings discards the accumulated warnings.
func (e *Engine) ResetWarnings() {
	e.warnings = nil
}

// Menus returns the menu entries scripts have registered.
func (e *Engine) Menus() []MenuEntry {
	return slices.Clone(e.menus)
}

func (e *Engine) warn(ws ...model.Warning) {
	e.warnings = append(e.warnings, ws...)
}
