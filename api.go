package inkscript

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/tsawler/inkscript/decode"
	"github.com/tsawler/inkscript/model"
)

// register installs the `app` function table into the Lua state.
func (e *Engine) register() {
	funcs := map[string]lua.LGFunction{
		"addStroke":            e.luaAddStroke,
		"addSpline":            e.luaAddSpline,
		"getToolInfo":          e.luaGetToolInfo,
		"getDocumentStructure": e.luaGetDocumentStructure,
		"setCurrentPage":       e.luaSetCurrentPage,
		"setCurrentLayer":      e.luaSetCurrentLayer,
		"setLayerVisibility":   e.luaSetLayerVisibility,
		"setCurrentLayerName":  e.luaSetCurrentLayerName,
		"setBackgroundName":    e.luaSetBackgroundName,
		"setPageSize":          e.luaSetPageSize,
		"refreshPage":          e.luaRefreshPage,
		"msgbox":               e.luaMsgBox,
		"saveAs":               e.luaSaveAs,
		"getFilePath":          e.luaGetFilePath,
		"registerUi":           e.luaRegisterUi,
		"uiAction":             e.luaUiAction,
		"changeToolColor":      e.luaChangeToolColor,
	}
	app := e.state.SetFuncs(e.state.NewTable(), funcs)
	e.state.SetGlobal("app", app)
}

// currentPage returns the current page or aborts the calling script.
func (e *Engine) currentPage(L *lua.LState) *model.Page {
	page := e.doc.CurrentPage()
	if page == nil {
		L.RaiseError("document has no pages")
	}
	return page
}

// luaAddStroke builds a stroke from sample coordinate tables.
//
//	app.addStroke({
//	    ["x"] = {101.0, 102.0},
//	    ["y"] = {100.0, 100.0},
//	    ["pressure"] = {0.5, 0.4},
//	    ["width"] = 1.4,
//	    ["color"] = 0xff0000,
//	    ["fill"] = 0,
//	    ["tool"] = "pen",
//	    ["lineStyle"] = "dash",
//	})
//
// Pressure and all attributes are optional. Length mismatches between
// the tables abort the script; fewer than two points discards the
// stroke with a warning.
func (e *Engine) luaAddStroke(L *lua.LState) int {
	tbl := L.CheckTable(1)

	xs, err := decode.NumericSequence(tbl.RawGetString("x"))
	if err != nil {
		L.RaiseError("x: %s", err.Error())
		return 0
	}
	ys, err := decode.NumericSequence(tbl.RawGetString("y"))
	if err != nil {
		L.RaiseError("y: %s", err.Error())
		return 0
	}

	var pressures []float64
	if pv := tbl.RawGetString("pressure"); pv != lua.LNil {
		ps, err := decode.NumericSequence(pv)
		if err != nil {
			L.RaiseError("pressure: %s", err.Error())
			return 0
		}
		if ps == nil {
			ps = []float64{}
		}
		pressures = ps
	}

	ov, err := decode.StyleOverride(tbl)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	stroke, warnings, err := e.asm.FromSamples(xs, ys, pressures, ov)
	e.warn(warnings...)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	if stroke != nil {
		e.asm.Commit(e.currentPage(L).SelectedLayer(), stroke)
	}
	return 0
}

// luaAddSpline builds a stroke from packed cubic spline segments.
//
//	app.addSpline({
//	    ["splines"] = {
//	        880.0, 874.0, 881.3, 851.6, 877.3, 828.3, 875.2, 806.0,
//	    },
//	    ["tool"] = "pen",
//	})
//
// Eight values per segment: startX, startY, ctrl1X, ctrl1Y, ctrl2X,
// ctrl2Y, endX, endY. A stream length not divisible by eight aborts the
// script before any rasterization.
func (e *Engine) luaAddSpline(L *lua.LState) int {
	tbl := L.CheckTable(1)

	stream, err := decode.NumericSequence(tbl.RawGetString("splines"))
	if err != nil {
		L.RaiseError("splines: %s", err.Error())
		return 0
	}

	ov, err := decode.StyleOverride(tbl)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	stroke, warnings, err := e.asm.FromSpline(stream, ov)
	e.warn(warnings...)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	if stroke != nil {
		e.asm.Commit(e.currentPage(L).SelectedLayer(), stroke)
	}
	return 0
}

// luaGetToolInfo returns a snapshot of one tool's configuration.
//
//	local penInfo = app.getToolInfo("pen")
//	local thickness = penInfo["size"]["value"]
//
// Recognized modes: "active", "pen", "highlighter", "eraser", "text".
func (e *Engine) luaGetToolInfo(L *lua.LState) int {
	mode := L.CheckString(1)
	info := L.NewTable()

	switch mode {
	case "active":
		kind := e.settings.ActiveTool()
		ti := e.settings.Tool(kind)
		info.RawSetString("type", lua.LString(kind.String()))
		info.RawSetString("size", sizeTable(L, ti.Size.String(), ti.CurrentThickness()))
		info.RawSetString("color", lua.LNumber(ti.Color))
		info.RawSetString("fillOpacity", lua.LNumber(ti.FillOpacity))
		info.RawSetString("drawingType", lua.LString(ti.DrawingType))
		info.RawSetString("lineStyle", lua.LString(model.FormatLineStyle(ti.LineStyle)))

	case "pen":
		ti := e.settings.Tool(model.ToolPen)
		info.RawSetString("size", sizeTable(L, ti.Size.String(), ti.CurrentThickness()))
		info.RawSetString("color", lua.LNumber(ti.Color))
		info.RawSetString("drawingType", lua.LString(ti.DrawingType))
		info.RawSetString("lineStyle", lua.LString(model.FormatLineStyle(ti.LineStyle)))
		info.RawSetString("filled", lua.LBool(ti.FillEnabled))
		info.RawSetString("fillOpacity", lua.LNumber(ti.FillOpacity))

	case "highlighter":
		ti := e.settings.Tool(model.ToolHighlighter)
		info.RawSetString("size", sizeTable(L, ti.Size.String(), ti.CurrentThickness()))
		info.RawSetString("color", lua.LNumber(ti.Color))
		info.RawSetString("drawingType", lua.LString(ti.DrawingType))
		info.RawSetString("filled", lua.LBool(ti.FillEnabled))
		info.RawSetString("fillOpacity", lua.LNumber(ti.FillOpacity))

	case "eraser":
		er := e.settings.Eraser()
		info.RawSetString("type", lua.LString(er.Type))
		info.RawSetString("size", sizeTable(L, er.Size.String(), er.Thickness[er.Size]))

	case "text":
		tx := e.settings.Text()
		font := L.NewTable()
		font.RawSetString("name", lua.LString(tx.FontName))
		font.RawSetString("size", lua.LNumber(tx.FontSize))
		info.RawSetString("font", font)
		info.RawSetString("color", lua.LNumber(tx.Color))
	}

	L.Push(info)
	return 1
}

func sizeTable(L *lua.LState, name string, value float64) *lua.LTable {
	size := L.NewTable()
	size.RawSetString("name", lua.LString(name))
	size.RawSetString("value", lua.LNumber(value))
	return size
}

// luaGetDocumentStructure returns the document tree as a Lua table:
// per-page dimensions, annotation state, background name, the layer
// list with visibility, and the current page/layer selections.
func (e *Engine) luaGetDocumentStructure(L *lua.LState) int {
	root := L.NewTable()
	pages := L.NewTable()

	for p := 1; p <= e.doc.PageCount(); p++ {
		page := e.doc.Page(p)
		pt := L.NewTable()
		pt.RawSetString("pageWidth", lua.LNumber(page.Width()))
		pt.RawSetString("pageHeight", lua.LNumber(page.Height()))
		pt.RawSetString("isAnnotated", lua.LBool(page.IsAnnotated()))
		pt.RawSetString("backgroundName", lua.LString(page.BackgroundName()))

		layers := L.NewTable()
		for i := 0; i < page.LayerCount(); i++ {
			layer := page.Layer(i)
			lt := L.NewTable()
			lt.RawSetString("name", lua.LString(layer.Name()))
			lt.RawSetString("isVisible", lua.LBool(layer.Visible()))
			lt.RawSetString("isAnnotated", lua.LBool(layer.IsAnnotated()))
			layers.RawSetInt(i+1, lt)
		}
		pt.RawSetString("layers", layers)
		pt.RawSetString("currentLayer", lua.LNumber(page.SelectedLayerIndex()+1))

		pages.RawSetInt(p, pt)
	}

	root.RawSetString("pages", pages)
	root.RawSetString("currentPage", lua.LNumber(e.doc.CurrentPageNumber()))
	L.Push(root)
	return 1
}

// luaSetCurrentPage changes the page selection (1-indexed, clamped).
func (e *Engine) luaSetCurrentPage(L *lua.LState) int {
	e.doc.SetCurrentPage(L.CheckInt(1))
	return 0
}

// luaSetCurrentLayer changes the layer selection on the current page
// (1-indexed, clamped). An optional second argument also sets the
// selected layer's visibility.
func (e *Engine) luaSetCurrentLayer(L *lua.LState) int {
	page := e.currentPage(L)
	page.SelectLayer(L.CheckInt(1) - 1)
	if L.GetTop() >= 2 {
		page.SelectedLayer().SetVisible(L.CheckBool(2))
	}
	return 0
}

// luaSetLayerVisibility shows or hides the selected layer.
func (e *Engine) luaSetLayerVisibility(L *lua.LState) int {
	e.currentPage(L).SelectedLayer().SetVisible(L.CheckBool(1))
	return 0
}

// luaSetCurrentLayerName renames the selected layer.
func (e *Engine) luaSetCurrentLayerName(L *lua.LState) int {
	e.currentPage(L).SelectedLayer().SetName(L.CheckString(1))
	return 0
}

// luaSetBackgroundName renames the current page background.
func (e *Engine) luaSetBackgroundName(L *lua.LState) int {
	e.currentPage(L).SetBackgroundName(L.CheckString(1))
	return 0
}

// luaSetPageSize changes the current page dimensions. Non-positive
// values leave the corresponding dimension unchanged.
func (e *Engine) luaSetPageSize(L *lua.LState) int {
	w := float64(L.CheckNumber(1))
	h := float64(L.CheckNumber(2))
	e.currentPage(L).SetSize(w, h)
	return 0
}

// luaRefreshPage asks the host to redraw the current page.
func (e *Engine) luaRefreshPage(L *lua.LState) int {
	e.host.Refresh()
	return 0
}

// luaMsgBox presents a message box with numbered buttons and returns
// the chosen button number.
//
//	local result = app.msgbox("Save changes?", {[1] = "Yes", [2] = "No"})
func (e *Engine) luaMsgBox(L *lua.LState) int {
	msg := L.CheckString(1)
	buttons, err := decode.IndexedStrings(L.CheckTable(2))
	if err != nil {
		L.RaiseError("buttons: %s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(e.host.MsgBox(msg, buttons)))
	return 1
}

// luaSaveAs shows the host's save dialog and returns the chosen path,
// or nothing when the user cancels.
func (e *Engine) luaSaveAs(L *lua.LState) int {
	suggested := L.OptString(1, "Untitled")
	path, ok := e.host.SaveAs(suggested)
	if !ok {
		return 0
	}
	L.Push(lua.LString(path))
	return 1
}

// luaGetFilePath shows the host's open dialog, optionally restricted to
// a list of glob patterns, and returns the chosen path.
//
//	path = app.getFilePath({"*.bmp", "*.png"})
func (e *Engine) luaGetFilePath(L *lua.LState) int {
	var filters []string
	if L.GetTop() >= 1 {
		fs, err := decode.StringSequence(L.Get(1))
		if err != nil {
			L.RaiseError("filters: %s", err.Error())
			return 0
		}
		filters = fs
	}
	path, ok := e.host.OpenFile(filters)
	if !ok {
		return 0
	}
	L.Push(lua.LString(path))
	return 1
}

// luaRegisterUi registers a script-provided menu entry.
//
//	app.registerUi({["menu"] = "HelloWorld", callback = "printMessage",
//	    accelerator = "<Control>a"})
func (e *Engine) luaRegisterUi(L *lua.LState) int {
	tbl := L.CheckTable(1)
	entry := MenuEntry{
		Menu:        tableString(tbl, "menu"),
		Callback:    tableString(tbl, "callback"),
		Accelerator: tableString(tbl, "accelerator"),
	}
	if entry.Callback == "" {
		L.RaiseError("missing callback function")
		return 0
	}

	menuID := e.host.RegisterMenu(entry)
	e.menus = append(e.menus, entry)

	ret := L.NewTable()
	ret.RawSetString("menuId", lua.LNumber(menuID))
	ret.RawSetString("toolbarId", lua.LNumber(-1))
	L.Push(ret)
	return 1
}

// luaUiAction dispatches a named UI action through the host.
//
//	app.uiAction({["action"] = "ACTION_PASTE"})
func (e *Engine) luaUiAction(L *lua.LState) int {
	tbl := L.CheckTable(1)
	action := tableString(tbl, "action")
	if action == "" {
		L.RaiseError("missing action")
		return 0
	}

	enabled := true
	if b, ok := tbl.RawGetString("enabled").(lua.LBool); ok {
		enabled = bool(b)
	}

	if err := e.host.DispatchAction(action, enabled); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// luaChangeToolColor changes the color default of a stroke tool (the
// active tool when no tool key is given).
//
//	app.changeToolColor({["color"] = 0xff00ff, ["tool"] = "pen"})
func (e *Engine) luaChangeToolColor(L *lua.LState) int {
	tbl := L.CheckTable(1)

	kind := e.settings.ActiveTool()
	if s, ok := tbl.RawGetString("tool").(lua.LString); ok {
		switch strings.ToLower(string(s)) {
		case "pen":
			kind = model.ToolPen
		case "highlighter":
			kind = model.ToolHighlighter
		default:
			L.RaiseError("tool %q has no color capability", string(s))
			return 0
		}
	}

	num, ok := tbl.RawGetString("color").(lua.LNumber)
	if !ok {
		L.RaiseError("missing color")
		return 0
	}
	e.settings.SetToolColor(kind, uint32(int64(num)))
	return 0
}

// tableString reads a string field from a table, returning "" when the
// field is absent or not a string.
func tableString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}
