package model

import "fmt"

// WarningCode classifies a non-fatal diagnostic.
type WarningCode int

const (
	// WarnUnknownTool: an unrecognized tool name fell back to the pen.
	WarnUnknownTool WarningCode = iota
	// WarnDegenerateStroke: fewer than two points, stroke discarded.
	WarnDegenerateStroke
	// WarnNoPressure: no pressure data supplied, uniform width assumed.
	WarnNoPressure
)

func (c WarningCode) String() string {
	switch c {
	case WarnUnknownTool:
		return "unknown-tool"
	case WarnDegenerateStroke:
		return "degenerate-stroke"
	case WarnNoPressure:
		return "no-pressure"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal condition encountered while processing a
// script request. The request itself completes normally; warnings are
// accumulated and surfaced to the host.
type Warning struct {
	Code    WarningCode
	Message string
}

// Warningf creates a warning with a formatted message.
func Warningf(code WarningCode, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}
