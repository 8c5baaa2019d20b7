package inkscript

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/inkscript/model"
	"github.com/tsawler/inkscript/tools"
)

// recordingHost captures host calls for assertions.
type recordingHost struct {
	refreshed   int
	msgboxMsg   string
	msgboxBtns  map[int]string
	msgboxRet   int
	saveAsName  string
	saveAsPath  string
	saveAsOK    bool
	openFilters []string
	openPath    string
	openOK      bool
	menus       []MenuEntry
	actions     []string
	actionErr   error
}

func (h *recordingHost) Refresh() { h.refreshed++ }

func (h *recordingHost) MsgBox(msg string, buttons map[int]string) int {
	h.msgboxMsg = msg
	h.msgboxBtns = buttons
	return h.msgboxRet
}

func (h *recordingHost) SaveAs(suggested string) (string, bool) {
	h.saveAsName = suggested
	return h.saveAsPath, h.saveAsOK
}

func (h *recordingHost) OpenFile(filters []string) (string, bool) {
	h.openFilters = filters
	return h.openPath, h.openOK
}

func (h *recordingHost) RegisterMenu(entry MenuEntry) int {
	h.menus = append(h.menus, entry)
	return len(h.menus)
}

func (h *recordingHost) DispatchAction(action string, enabled bool) error {
	h.actions = append(h.actions, action)
	return h.actionErr
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	doc := model.NewDocument()
	doc.AddPage(model.NewPage(595.28, 841.89))
	e := New(doc, tools.NewSettings())
	t.Cleanup(e.Close)
	return e
}

func selectedLayer(t *testing.T, e *Engine) *model.Layer {
	t.Helper()
	page := e.Document().CurrentPage()
	if page == nil {
		t.Fatal("document has no current page")
	}
	return page.SelectedLayer()
}

// TestAddStroke tests the sample route from script to committed element
func TestAddStroke(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addStroke({
		    ["x"] = {110.0, 120.0, 130.0},
		    ["y"] = {200.0, 210.0, 220.0},
		    ["pressure"] = {0.4, 0.6, 0.8},
		    ["tool"] = "pen",
		    ["width"] = 1.4,
		    ["color"] = 0xff0000,
		})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(e.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %v", e.Warnings())
	}

	layer := selectedLayer(t, e)
	if layer.ElementCount() != 1 {
		t.Fatalf("expected 1 committed element, got %d", layer.ElementCount())
	}
	stroke, ok := layer.Element(0).(*model.Stroke)
	if !ok {
		t.Fatalf("expected a stroke element, got %T", layer.Element(0))
	}
	if stroke.PointCount() != 3 {
		t.Fatalf("expected 3 points, got %d", stroke.PointCount())
	}

	// The script's x table drives the vertical axis.
	first := stroke.Point(0)
	if first.X != 200.0 || first.Y != 110.0 {
		t.Errorf("expected first point (200, 110), got (%v, %v)", first.X, first.Y)
	}
	if first.Pressure != 0.4 {
		t.Errorf("expected pressure 0.4, got %v", first.Pressure)
	}

	style := stroke.Style()
	if style.Kind != model.ToolPen {
		t.Errorf("expected a pen stroke, got %v", style.Kind)
	}
	if style.Width != 1.4 {
		t.Errorf("expected width 1.4, got %v", style.Width)
	}
	if style.Color != 0xff0000 {
		t.Errorf("expected color 0xff0000, got %#x", style.Color)
	}
}

// TestAddStrokeDefaults tests that omitted attributes come from the
// tool settings
func TestAddStrokeDefaults(t *testing.T) {
	e := newTestEngine(t)
	e.Settings().SetToolColor(model.ToolPen, 0x123456)

	err := e.Run(`
		app.addStroke({
		    ["x"] = {0.0, 1.0},
		    ["y"] = {0.0, 1.0},
		    ["pressure"] = {0.5, 0.5},
		})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	stroke := selectedLayer(t, e).Element(0).(*model.Stroke)
	style := stroke.Style()
	if style.Kind != model.ToolPen {
		t.Errorf("expected pen fallback, got %v", style.Kind)
	}
	if style.Color != 0x123456 {
		t.Errorf("expected the live pen color 0x123456, got %#x", style.Color)
	}
	if style.Width != 0.85 {
		t.Errorf("expected the pen default width 0.85, got %v", style.Width)
	}
	if style.Fill != model.NoFill {
		t.Errorf("expected no fill, got %d", style.Fill)
	}
}

// TestAddStrokeNamedColor tests color lookup by name
func TestAddStrokeNamedColor(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addStroke({
		    ["x"] = {0.0, 1.0},
		    ["y"] = {0.0, 1.0},
		    ["color"] = "Red",
		})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	stroke := selectedLayer(t, e).Element(0).(*model.Stroke)
	if got := stroke.Style().Color; got != 0xff0000 {
		t.Errorf("expected color 0xff0000 for \"Red\", got %#x", got)
	}
}

// TestAddStrokeLengthMismatch tests that unequal tables abort the
// script with nothing committed
func TestAddStrokeLengthMismatch(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addStroke({
		    ["x"] = {1.0, 2.0, 3.0},
		    ["y"] = {1.0, 2.0},
		})
	`)
	if err == nil {
		t.Fatal("expected a script error for unequal coordinate tables")
	}
	if layer := selectedLayer(t, e); layer.ElementCount() != 0 {
		t.Errorf("expected nothing committed, got %d elements", layer.ElementCount())
	}
}

// TestAddStrokeEmptyPressure tests that a present-but-empty pressure
// table is still length-checked
func TestAddStrokeEmptyPressure(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addStroke({
		    ["x"] = {1.0, 2.0},
		    ["y"] = {1.0, 2.0},
		    ["pressure"] = {},
		})
	`)
	if err == nil {
		t.Fatal("expected a script error for an empty pressure table")
	}
}

// TestAddStrokeBadShape tests the container shape gate
func TestAddStrokeBadShape(t *testing.T) {
	e := newTestEngine(t)

	scripts := map[string]string{
		"scalar x":  `app.addStroke({["x"] = 5, ["y"] = {1.0, 2.0}})`,
		"string y":  `app.addStroke({["x"] = {1.0, 2.0}, ["y"] = "nope"})`,
		"bad value": `app.addStroke({["x"] = {1.0, "two"}, ["y"] = {1.0, 2.0}})`,
		"bad width": `app.addStroke({["x"] = {1.0, 2.0}, ["y"] = {1.0, 2.0}, ["width"] = "thick"})`,
	}
	for name, src := range scripts {
		if err := e.Run(src); err == nil {
			t.Errorf("%s: expected a script error", name)
		}
	}
	if layer := selectedLayer(t, e); layer.ElementCount() != 0 {
		t.Errorf("expected nothing committed, got %d elements", layer.ElementCount())
	}
}

// TestAddStrokeSinglePoint tests the soft degenerate path: the script
// completes and the stroke is discarded with a warning
func TestAddStrokeSinglePoint(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addStroke({["x"] = {5.0}, ["y"] = {5.0}})
		app.addStroke({["x"] = {0.0, 1.0}, ["y"] = {0.0, 1.0}})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if layer := selectedLayer(t, e); layer.ElementCount() != 1 {
		t.Errorf("expected only the second stroke committed, got %d elements",
			layer.ElementCount())
	}

	var degenerate, noPressure bool
	for _, w := range e.Warnings() {
		switch w.Code {
		case model.WarnDegenerateStroke:
			degenerate = true
		case model.WarnNoPressure:
			noPressure = true
		}
	}
	if !degenerate {
		t.Error("expected a degenerate-stroke warning")
	}
	if !noPressure {
		t.Error("expected a no-pressure warning")
	}
}

// TestAddStrokeUnknownTool tests the unknown-tool fallback
func TestAddStrokeUnknownTool(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addStroke({
		    ["x"] = {0.0, 1.0},
		    ["y"] = {0.0, 1.0},
		    ["tool"] = "crayon",
		})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	stroke := selectedLayer(t, e).Element(0).(*model.Stroke)
	if stroke.Style().Kind != model.ToolPen {
		t.Errorf("expected pen fallback, got %v", stroke.Style().Kind)
	}

	found := false
	for _, w := range e.Warnings() {
		if w.Code == model.WarnUnknownTool && strings.Contains(w.Message, "crayon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unknown-tool warning naming crayon, got %v", e.Warnings())
	}
}

// TestAddSpline tests the curve route from script to committed element
func TestAddSpline(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addSpline({
		    ["splines"] = {
		        880.0, 874.0, 881.3295, 851.5736,
		        877.2915, 828.2946, 875.1697, 806.0,
		    },
		    ["tool"] = "pen",
		})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(e.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %v", e.Warnings())
	}

	layer := selectedLayer(t, e)
	if layer.ElementCount() != 1 {
		t.Fatalf("expected 1 committed element, got %d", layer.ElementCount())
	}
	stroke := layer.Element(0).(*model.Stroke)
	if stroke.PointCount() < 2 {
		t.Fatalf("expected at least 2 points, got %d", stroke.PointCount())
	}

	// Curve coordinates pass through unswapped.
	first := stroke.Point(0)
	if first.X != 880.0 || first.Y != 874.0 {
		t.Errorf("expected first point (880, 874), got (%v, %v)", first.X, first.Y)
	}
	if first.HasPressure() {
		t.Error("expected no pressure on curve points")
	}
}

// TestAddSplineBadLength tests that a truncated segment aborts the
// script
func TestAddSplineBadLength(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.addSpline({
		    ["splines"] = {1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0},
		})
	`)
	if err == nil {
		t.Fatal("expected a script error for a truncated control stream")
	}
	if layer := selectedLayer(t, e); layer.ElementCount() != 0 {
		t.Errorf("expected nothing committed, got %d elements", layer.ElementCount())
	}
}

// TestGetToolInfo tests the tool snapshot surface through Lua
func TestGetToolInfo(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		local pen = app.getToolInfo("pen")
		penSizeName = pen["size"]["name"]
		penThickness = pen["size"]["value"]
		penColor = pen["color"]
		penLineStyle = pen["lineStyle"]

		local hi = app.getToolInfo("highlighter")
		hiThickness = hi["size"]["value"]
		hiColor = hi["color"]
		hiLineStyle = hi["lineStyle"]

		local txt = app.getToolInfo("text")
		fontName = txt["font"]["name"]
		fontSize = txt["font"]["size"]
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	globals := map[string]string{
		"penSizeName":  "FINE",
		"penThickness": "0.85",
		"penColor":     "0",
		"penLineStyle": "plain",
		"hiThickness":  "8.5",
		"hiColor":      "16776960",
		"fontName":     "Sans",
		"fontSize":     "12",
	}
	for name, want := range globals {
		if got := e.state.GetGlobal(name).String(); got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}

	// Highlighters carry no line style.
	if ls := e.state.GetGlobal("hiLineStyle").String(); ls != "nil" {
		t.Errorf("expected no highlighter lineStyle, got %q", ls)
	}
}

// TestGetDocumentStructure tests the document snapshot
func TestGetDocumentStructure(t *testing.T) {
	e := newTestEngine(t)
	e.Document().AddPage(model.NewPage(100, 200))
	e.Document().Page(2).SetBackgroundName("graph")
	e.Document().SetCurrentPage(2)

	err := e.Run(`
		local s = app.getDocumentStructure()
		pageCount = #s["pages"]
		currentPage = s["currentPage"]
		secondWidth = s["pages"][2]["pageWidth"]
		secondBackground = s["pages"][2]["backgroundName"]
		layerName = s["pages"][1]["layers"][1]["name"]
		layerVisible = s["pages"][1]["layers"][1]["isVisible"]
		currentLayer = s["pages"][1]["currentLayer"]
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	globals := map[string]string{
		"pageCount":        "2",
		"currentPage":      "2",
		"secondWidth":      "100",
		"secondBackground": "graph",
		"layerVisible":     "true",
		"currentLayer":     "1",
	}
	for name, want := range globals {
		if got := e.state.GetGlobal(name).String(); got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}

// TestLayerOperations tests selection, visibility and renaming
func TestLayerOperations(t *testing.T) {
	e := newTestEngine(t)
	page := e.Document().CurrentPage()
	page.AddLayer()
	page.AddLayer()

	err := e.Run(`
		app.setCurrentLayer(2)
		app.setCurrentLayerName("Sketch")
		app.setLayerVisibility(false)
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if page.SelectedLayerIndex() != 1 {
		t.Errorf("expected layer index 1 selected, got %d", page.SelectedLayerIndex())
	}
	if name := page.SelectedLayer().Name(); name != "Sketch" {
		t.Errorf("expected layer name Sketch, got %q", name)
	}
	if page.SelectedLayer().Visible() {
		t.Error("expected the selected layer hidden")
	}

	// The two-argument form also flips visibility.
	if err := e.Run(`app.setCurrentLayer(3, true)`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if page.SelectedLayerIndex() != 2 {
		t.Errorf("expected layer index 2 selected, got %d", page.SelectedLayerIndex())
	}
	if !page.SelectedLayer().Visible() {
		t.Error("expected the selected layer visible")
	}

	// Out-of-range selections clamp.
	if err := e.Run(`app.setCurrentLayer(99)`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if page.SelectedLayerIndex() != 2 {
		t.Errorf("expected the selection clamped to 2, got %d", page.SelectedLayerIndex())
	}
}

// TestPageOperations tests page sizing and background naming
func TestPageOperations(t *testing.T) {
	e := newTestEngine(t)
	page := e.Document().CurrentPage()

	err := e.Run(`
		app.setPageSize(300.0, 400.0)
		app.setBackgroundName("ruled")
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if page.Width() != 300 || page.Height() != 400 {
		t.Errorf("expected page 300x400, got %vx%v", page.Width(), page.Height())
	}
	if page.BackgroundName() != "ruled" {
		t.Errorf("expected background ruled, got %q", page.BackgroundName())
	}

	// Non-positive dimensions leave the page untouched.
	if err := e.Run(`app.setPageSize(-1.0, 0.0)`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if page.Width() != 300 || page.Height() != 400 {
		t.Errorf("expected dimensions unchanged, got %vx%v", page.Width(), page.Height())
	}
}

// TestHostSurface tests the calls that reach the host collaborator
func TestHostSurface(t *testing.T) {
	e := newTestEngine(t)
	host := &recordingHost{
		msgboxRet:  2,
		saveAsPath: "/tmp/out.xopp",
		saveAsOK:   true,
		openPath:   "/tmp/in.png",
		openOK:     true,
	}
	e.SetHost(host)

	err := e.Run(`
		app.refreshPage()
		choice = app.msgbox("Save changes?", {[1] = "Yes", [2] = "No"})
		savePath = app.saveAs("sketch")
		openPath = app.getFilePath({"*.bmp", "*.png"})
		app.uiAction({["action"] = "ACTION_GRID_SNAPPING", ["enabled"] = false})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if host.refreshed != 1 {
		t.Errorf("expected 1 refresh, got %d", host.refreshed)
	}
	if host.msgboxMsg != "Save changes?" {
		t.Errorf("expected the message passed through, got %q", host.msgboxMsg)
	}
	if host.msgboxBtns[1] != "Yes" || host.msgboxBtns[2] != "No" {
		t.Errorf("expected the button map passed through, got %v", host.msgboxBtns)
	}
	if got := e.state.GetGlobal("choice").String(); got != "2" {
		t.Errorf("expected msgbox result 2, got %q", got)
	}
	if host.saveAsName != "sketch" {
		t.Errorf("expected the suggested name passed through, got %q", host.saveAsName)
	}
	if got := e.state.GetGlobal("savePath").String(); got != "/tmp/out.xopp" {
		t.Errorf("expected the save path returned, got %q", got)
	}
	if len(host.openFilters) != 2 || host.openFilters[0] != "*.bmp" {
		t.Errorf("expected the filter list passed through, got %v", host.openFilters)
	}
	if got := e.state.GetGlobal("openPath").String(); got != "/tmp/in.png" {
		t.Errorf("expected the open path returned, got %q", got)
	}
	if len(host.actions) != 1 || host.actions[0] != "ACTION_GRID_SNAPPING" {
		t.Errorf("expected the action dispatched, got %v", host.actions)
	}
}

// TestSaveAsCancelled tests that a cancelled dialog returns nil
func TestSaveAsCancelled(t *testing.T) {
	e := newTestEngine(t)
	e.SetHost(&recordingHost{saveAsOK: false})

	err := e.Run(`result = app.saveAs()`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := e.state.GetGlobal("result").String(); got != "nil" {
		t.Errorf("expected nil on cancel, got %q", got)
	}
}

// TestUiActionError tests that a host dispatch failure aborts the
// script
func TestUiActionError(t *testing.T) {
	e := newTestEngine(t)
	e.SetHost(&recordingHost{actionErr: errors.New("unknown action")})

	err := e.Run(`app.uiAction({["action"] = "ACTION_BOGUS"})`)
	if err == nil {
		t.Fatal("expected a script error from the host")
	}
	if !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("expected the host error surfaced, got %v", err)
	}
}

// TestRegisterUi tests menu registration
func TestRegisterUi(t *testing.T) {
	e := newTestEngine(t)
	host := &recordingHost{}
	e.SetHost(host)

	err := e.Run(`
		local ref = app.registerUi({
		    ["menu"] = "HelloWorld",
		    ["callback"] = "printMessage",
		    ["accelerator"] = "<Control>a",
		})
		menuId = ref["menuId"]
		toolbarId = ref["toolbarId"]
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(host.menus) != 1 {
		t.Fatalf("expected 1 registered menu, got %d", len(host.menus))
	}
	entry := host.menus[0]
	if entry.Menu != "HelloWorld" || entry.Callback != "printMessage" ||
		entry.Accelerator != "<Control>a" {
		t.Errorf("unexpected menu entry %+v", entry)
	}
	if menus := e.Menus(); len(menus) != 1 || menus[0] != entry {
		t.Errorf("expected the engine to record the entry, got %v", menus)
	}
	if got := e.state.GetGlobal("menuId").String(); got != "1" {
		t.Errorf("expected menuId 1, got %q", got)
	}
	if got := e.state.GetGlobal("toolbarId").String(); got != "-1" {
		t.Errorf("expected toolbarId -1, got %q", got)
	}
}

// TestRegisterUiMissingCallback tests the callback requirement
func TestRegisterUiMissingCallback(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`app.registerUi({["menu"] = "Nameless"})`)
	if err == nil {
		t.Fatal("expected a script error for a missing callback")
	}
	if !strings.Contains(err.Error(), "callback") {
		t.Errorf("expected the error to name the callback, got %v", err)
	}
}

// TestChangeToolColor tests the tool color mutator
func TestChangeToolColor(t *testing.T) {
	e := newTestEngine(t)

	err := e.Run(`
		app.changeToolColor({["color"] = 0xff00ff, ["tool"] = "pen"})
		app.changeToolColor({["color"] = 0x00ffff, ["tool"] = "Highlighter"})
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := e.Settings().Tool(model.ToolPen).Color; got != 0xff00ff {
		t.Errorf("expected pen color 0xff00ff, got %#x", got)
	}
	if got := e.Settings().Tool(model.ToolHighlighter).Color; got != 0x00ffff {
		t.Errorf("expected highlighter color 0x00ffff, got %#x", got)
	}

	// Omitting the tool targets the active tool.
	e.Settings().SetActiveTool(model.ToolHighlighter)
	if err := e.Run(`app.changeToolColor({["color"] = 0x112233})`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := e.Settings().Tool(model.ToolHighlighter).Color; got != 0x112233 {
		t.Errorf("expected active-tool color 0x112233, got %#x", got)
	}

	// Non-stroke tools are rejected.
	if err := e.Run(`app.changeToolColor({["color"] = 1, ["tool"] = "eraser"})`); err == nil {
		t.Fatal("expected a script error for a tool without color")
	}
}

// TestEmptyDocument tests that page-dependent calls abort cleanly
func TestEmptyDocument(t *testing.T) {
	e := New(model.NewDocument(), tools.NewSettings())
	defer e.Close()

	err := e.Run(`app.addStroke({["x"] = {0.0, 1.0}, ["y"] = {0.0, 1.0}})`)
	if err == nil {
		t.Fatal("expected a script error with no pages")
	}
	if !strings.Contains(err.Error(), "no pages") {
		t.Errorf("expected the error to mention missing pages, got %v", err)
	}
}

// TestResetWarnings tests warning accumulation across runs
func TestResetWarnings(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Run(`app.addStroke({["x"] = {1.0}, ["y"] = {1.0}})`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(e.Warnings()) == 0 {
		t.Fatal("expected accumulated warnings")
	}
	e.ResetWarnings()
	if len(e.Warnings()) != 0 {
		t.Errorf("expected warnings cleared, got %v", e.Warnings())
	}
}
