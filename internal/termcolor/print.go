package termcolor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	warnLabel  = color.New(color.FgYellow, color.Bold)
	errorLabel = color.New(color.FgRed, color.Bold)
	dimText    = color.New(color.Faint)
)

// Apply switches the process-wide color state to match the resolved mode.
// Call it once after flag and environment resolution, before any output.
func Apply(mode ColorMode) {
	color.NoColor = mode != ModeAlways
}

// Warnf writes a diagnostic prefixed with a yellow "warning:" label.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnLabel.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// Errorf writes a diagnostic prefixed with a red "error:" label.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", errorLabel.Sprint("error:"), fmt.Sprintf(format, args...))
}

// Dim renders s faintly when colors are enabled.
func Dim(s string) string {
	return dimText.Sprint(s)
}
