package config

import (
	"fmt"
	"strings"
)

// CanonicalizeColor lower-cases and validates a color mode value.
// Empty means auto.
func CanonicalizeColor(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		return "auto", nil
	}
	switch mode {
	case "auto", "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode: %s", raw)
	}
}

// Normalize canonicalizes merged settings. Style names are resolved
// later, against the style tables, where failure carries the file
// context.
func Normalize(values Settings) (Settings, error) {
	var err error
	values.Style = strings.TrimSpace(values.Style)
	values.Color, err = CanonicalizeColor(values.Color)
	if err != nil {
		return values, err
	}
	return values, nil
}
