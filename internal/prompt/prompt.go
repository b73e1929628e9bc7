// Package prompt asks yes/no questions on interactive streams.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes "<question> [Y/n]" to w and reads answers from r
// until one parses. Empty input picks the default; end of input is
// treated as the default so piped runs cannot hang.
func Confirm(r io.Reader, w io.Writer, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	scanner := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprintf(w, "%s %s ", question, hint); err != nil {
			return def, fmt.Errorf("write prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return def, fmt.Errorf("read answer: %w", err)
			}
			return def, nil
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if _, err := fmt.Fprintln(w, "Please answer y or n."); err != nil {
			return def, fmt.Errorf("write prompt: %w", err)
		}
	}
}
