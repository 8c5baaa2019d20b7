package tools

import "github.com/tsawler/inkscript/model"

// EraserInfo is the eraser state exposed to scripts.
type EraserInfo struct {
	Type string
	Size ToolSize
	// Thickness maps each size step to its eraser thickness.
	Thickness map[ToolSize]float64
}

// TextInfo is the text tool state exposed to scripts.
type TextInfo struct {
	FontName string
	FontSize float64
	Color    uint32
}

// Settings is the in-memory implementation of [ToolDefaults]. It also
// holds the eraser and text tool state and the active tool selection,
// which scripts can inspect. The host mutates settings between script
// calls, never during one.
type Settings struct {
	pen         ToolInfo
	highlighter ToolInfo
	eraser      EraserInfo
	text        TextInfo
	active      model.ToolKind
}

// NewSettings creates settings populated with the application defaults:
// a fine black pen with no fill, and a medium yellow highlighter with
// fill disabled at 50% opacity.
func NewSettings() *Settings {
	return &Settings{
		pen: ToolInfo{
			Size: SizeFine,
			Thickness: map[ToolSize]float64{
				SizeVeryFine:  0.42,
				SizeFine:      0.85,
				SizeMedium:    1.41,
				SizeThick:     2.26,
				SizeVeryThick: 5.67,
			},
			Color:       0x000000,
			FillOpacity: 128,
			FillEnabled: false,
			DrawingType: "default",
			LineStyle:   model.PlainLine,
		},
		highlighter: ToolInfo{
			Size: SizeMedium,
			Thickness: map[ToolSize]float64{
				SizeVeryFine:  1.41,
				SizeFine:      2.83,
				SizeMedium:    8.50,
				SizeThick:     12.00,
				SizeVeryThick: 18.00,
			},
			Color:       0xffff00,
			FillOpacity: 128,
			FillEnabled: false,
			DrawingType: "default",
			// Highlighter strokes have no line-style concept; the
			// stored pattern is never used as a default.
		},
		eraser: EraserInfo{
			Type: "default",
			Size: SizeMedium,
			Thickness: map[ToolSize]float64{
				SizeVeryFine:  1.41,
				SizeFine:      2.83,
				SizeMedium:    8.50,
				SizeThick:     12.00,
				SizeVeryThick: 18.00,
			},
		},
		text: TextInfo{
			FontName: "Sans",
			FontSize: 12,
			Color:    0x000000,
		},
		active: model.ToolPen,
	}
}

// Tool implements [ToolDefaults].
func (s *Settings) Tool(kind model.ToolKind) ToolInfo {
	if kind == model.ToolHighlighter {
		return s.highlighter
	}
	return s.pen
}

// Eraser returns the eraser state.
func (s *Settings) Eraser() EraserInfo {
	return s.eraser
}

// Text returns the text tool state.
func (s *Settings) Text() TextInfo {
	return s.text
}

// ActiveTool returns the currently selected tool kind.
func (s *Settings) ActiveTool() model.ToolKind {
	return s.active
}

// SetActiveTool changes the tool selection.
func (s *Settings) SetActiveTool(kind model.ToolKind) {
	s.active = kind
}

// SetToolColor changes the color default of one stroke tool.
func (s *Settings) SetToolColor(kind model.ToolKind, color uint32) {
	if kind == model.ToolHighlighter {
		s.highlighter.Color = color
		return
	}
	s.pen.Color = color
}

// SetToolSize changes the size selection of one stroke tool.
func (s *Settings) SetToolSize(kind model.ToolKind, size ToolSize) {
	if kind == model.ToolHighlighter {
		s.highlighter.Size = size
		return
	}
	s.pen.Size = size
}

// SetToolFill configures the fill default of one stroke tool.
func (s *Settings) SetToolFill(kind model.ToolKind, enabled bool, opacity int) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 255 {
		opacity = 255
	}
	if kind == model.ToolHighlighter {
		s.highlighter.FillEnabled = enabled
		s.highlighter.FillOpacity = opacity
		return
	}
	s.pen.FillEnabled = enabled
	s.pen.FillOpacity = opacity
}

// SetPenLineStyle changes the pen's line-style default.
func (s *Settings) SetPenLineStyle(ls model.LineStyle) {
	s.pen.LineStyle = ls
}
