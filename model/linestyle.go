package model

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// LineStyle represents a stroke dash pattern. An empty pattern draws a
// plain (solid) line.
type LineStyle struct {
	// Dashes holds alternating on/off lengths in document units.
	Dashes []float64
}

// Predefined patterns matching the names understood by guest scripts.
var (
	PlainLine   = LineStyle{}
	DashLine    = LineStyle{Dashes: []float64{6, 3}}
	DashDotLine = LineStyle{Dashes: []float64{6, 3, 0.5, 3}}
	DotLine     = LineStyle{Dashes: []float64{0.5, 3}}
)

// IsPlain reports whether the style draws an undashed line.
func (ls LineStyle) IsPlain() bool {
	return len(ls.Dashes) == 0
}

// Equal reports whether two styles describe the same pattern.
func (ls LineStyle) Equal(other LineStyle) bool {
	return slices.Equal(ls.Dashes, other.Dashes)
}

// ParseLineStyle converts a pattern name into a LineStyle. Recognized
// names are "plain" (alias "solid"), "dash", "dashdot" and "dot", plus
// custom patterns of the form "cust: 2 4 1 4". Unrecognized input yields
// the plain style.
func ParseLineStyle(name string) LineStyle {
	switch strings.TrimSpace(name) {
	case "dash":
		return DashLine
	case "dashdot":
		return DashDotLine
	case "dot":
		return DotLine
	}

	if rest, ok := strings.CutPrefix(strings.TrimSpace(name), "cust:"); ok {
		var dashes []float64
		for _, field := range strings.Fields(rest) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || v <= 0 {
				return PlainLine
			}
			dashes = append(dashes, v)
		}
		return LineStyle{Dashes: dashes}
	}

	return PlainLine
}

// FormatLineStyle converts a LineStyle back into its pattern name.
func FormatLineStyle(ls LineStyle) string {
	switch {
	case ls.IsPlain():
		return "plain"
	case ls.Equal(DashLine):
		return "dash"
	case ls.Equal(DashDotLine):
		return "dashdot"
	case ls.Equal(DotLine):
		return "dot"
	}

	var sb strings.Builder
	sb.WriteString("cust:")
	for _, d := range ls.Dashes {
		fmt.Fprintf(&sb, " %g", d)
	}
	return sb.String()
}
