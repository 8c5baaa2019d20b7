package tools

import "github.com/tsawler/inkscript/model"

// Resolve produces a fully populated stroke style from an optional
// override and the live tool defaults. The tool kind is resolved first;
// every other field then cascades explicit value > live default for that
// kind. Unknown non-empty tool names fall back to the pen with a
// warning.
func Resolve(ov Override, defs ToolDefaults) (model.StrokeStyle, []model.Warning) {
	var warnings []model.Warning

	kind := model.ToolPen
	switch ov.Tool {
	case "", "pen":
	case "highlighter":
		kind = model.ToolHighlighter
	default:
		warnings = append(warnings, model.Warningf(model.WarnUnknownTool,
			"unknown stroke tool %q, defaulting to pen", ov.Tool))
	}

	info := defs.Tool(kind)

	style := model.StrokeStyle{
		Kind:        kind,
		Color:       info.Color,
		DrawingType: info.DrawingType,
	}

	// Width. A non-positive explicit width cannot produce a valid
	// stroke, so it falls back to the tool thickness.
	if ov.HasWidth && ov.Width > 0 {
		style.Width = ov.Width
	} else {
		style.Width = info.CurrentThickness()
	}

	if ov.HasColor {
		style.Color = ov.Color
	}

	// Fill is a three-way branch: an explicit value wins verbatim
	// (including the no-fill sentinel); otherwise the tool's opacity
	// applies only when filling is enabled for that tool.
	switch {
	case ov.HasFill:
		style.Fill = clampFill(ov.Fill)
	case info.FillEnabled:
		style.Fill = clampFill(info.FillOpacity)
	default:
		style.Fill = model.NoFill
	}

	// Highlighter strokes have no line-style concept, so an unset line
	// style under the highlighter resolves to the plain pattern rather
	// than reading the pen's default.
	switch {
	case ov.HasLineStyle:
		style.LineStyle = model.ParseLineStyle(ov.LineStyle)
	case kind == model.ToolHighlighter:
		style.LineStyle = model.PlainLine
	default:
		style.LineStyle = info.LineStyle
	}

	return style, warnings
}

// clampFill maps any negative value to the no-fill sentinel and bounds
// opacity at 255.
func clampFill(fill int) int {
	if fill < 0 {
		return model.NoFill
	}
	if fill > 255 {
		return 255
	}
	return fill
}
