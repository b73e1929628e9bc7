// Package baseconv turns streams of integers into the characters they
// encode, reading each number in a configurable base.
package baseconv

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinBase and MaxBase bound the digit alphabets strconv understands.
const (
	MinBase = 2
	MaxBase = 36
)

// Convert splits input on sep, parses every token as an integer in the
// given base and returns the corresponding characters. Tokens are
// trimmed and empty ones skipped, so trailing newlines are harmless.
func Convert(input []byte, sep string, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("base must be between %d and %d, got %d", MinBase, MaxBase, base)
	}
	if !utf8.Valid(input) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	var out strings.Builder
	for _, tok := range strings.Split(string(input), sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, base, 32)
		if err != nil {
			return "", fmt.Errorf("failed to parse %q in base %d (check the base you're using): %w", tok, base, err)
		}
		if v > unicode.MaxRune || !utf8.ValidRune(rune(v)) {
			return "", fmt.Errorf("cannot convert %d to a character", v)
		}
		out.WriteRune(rune(v))
	}
	return out.String(), nil
}
