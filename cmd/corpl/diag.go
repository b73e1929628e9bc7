package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Icelk/iclu/internal/corpl"
	"github.com/Icelk/iclu/internal/style"
	"github.com/Icelk/iclu/internal/termcolor"
	"github.com/Icelk/iclu/internal/textutil"
)

// printWarnings renders one file's scan warnings. Each gets a location
// line quoting the offending input, truncated to the terminal width
// when stderr is a TTY so wide lines do not wrap the report.
func printWarnings(w io.Writer, path string, warnings []corpl.Warning) {
	if len(warnings) == 0 {
		return
	}
	width := diagWidth(os.Stderr)
	for _, warning := range warnings {
		termcolor.Warnf(w, "%s", warning.Message)
		if warning.Line <= 0 {
			continue
		}
		prefix := fmt.Sprintf("  %s:%d: ", path, warning.Line)
		excerpt := warning.Excerpt
		if width > 0 {
			if room := width - textutil.VisibleWidth(prefix); room > 0 {
				excerpt = textutil.TruncateByWidth(excerpt, room, "…")
			}
		}
		fmt.Fprintln(w, termcolor.Dim(prefix+excerpt))
	}
}

// printMarkerHint suggests a marker flag when detection failed and the
// file's path names a known language.
func printMarkerHint(w io.Writer, path string) {
	st, ok := style.ByPath(path)
	if !ok {
		return
	}
	alt := fmt.Sprintf("-c '%s'", st.Open)
	if st.Close != "" {
		alt += fmt.Sprintf(" --closing-comment '%s'", st.Close)
	}
	fmt.Fprintln(w, termcolor.Dim(fmt.Sprintf("  hint: pass --style %s or %s to set the marker", st.Name, alt)))
}

// diagWidth returns f's terminal width, or 0 when f is not a TTY.
func diagWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
