package inkscript

import (
	"strings"

	"github.com/tsawler/inkscript/model"
)

// Warning is a non-fatal diagnostic accumulated during script
// execution.
type Warning = model.Warning

// FormatWarnings renders warnings as a single line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
