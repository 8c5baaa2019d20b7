package tools

import "github.com/tsawler/inkscript/model"

// ToolSize names one of the discrete size steps a drawing tool can be
// set to.
type ToolSize int

const (
	SizeVeryFine ToolSize = iota
	SizeFine
	SizeMedium
	SizeThick
	SizeVeryThick
)

func (s ToolSize) String() string {
	switch s {
	case SizeVeryFine:
		return "VERY_FINE"
	case SizeFine:
		return "FINE"
	case SizeMedium:
		return "MEDIUM"
	case SizeThick:
		return "THICK"
	case SizeVeryThick:
		return "VERY_THICK"
	default:
		return "MEDIUM"
	}
}

// ToolInfo is the default bundle of one drawing tool: its selected size,
// the thickness each size maps to, and the stroke appearance defaults.
type ToolInfo struct {
	Size        ToolSize
	Thickness   map[ToolSize]float64
	Color       uint32
	FillOpacity int
	FillEnabled bool
	DrawingType string
	LineStyle   model.LineStyle
}

// CurrentThickness returns the thickness for the tool's selected size.
func (ti ToolInfo) CurrentThickness() float64 {
	return ti.Thickness[ti.Size]
}

// ToolDefaults is a read-only view of the application's current tool
// configuration. It is a live view, not a copy: implementations must not
// be mutated concurrently with a resolution call, which the host
// guarantees by keeping script execution single-threaded relative to the
// settings.
type ToolDefaults interface {
	// Tool returns the default bundle for the given stroke tool kind.
	Tool(kind model.ToolKind) ToolInfo
}
