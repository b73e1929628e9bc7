// Package escape decodes backslash escape sequences in command-line
// arguments, so separators like "\n" or "\x00" can be passed as flags.
package escape

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Unescape decodes escapes in s and returns the raw bytes.
// Supported forms: \\ \' \" \n \t \r \0, \xNN (two hex digits, appended
// as a single byte) and \u{N…} (one to six hex digits, appended as UTF-8).
func Unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, fmt.Errorf("truncated escape at end of %q", s)
		}
		switch s[i] {
		case '\\', '\'', '"':
			out = append(out, s[i])
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '0':
			out = append(out, 0)
		case 'x':
			if i+2 >= len(s) {
				return nil, fmt.Errorf("escape \\x wants two hex digits in %q", s)
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid hex escape %q", s[i-1:i+3])
			}
			out = append(out, byte(v))
			i += 2
		case 'u':
			if i+1 >= len(s) || s[i+1] != '{' {
				return nil, fmt.Errorf("escape \\u wants {…} in %q", s)
			}
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unterminated \\u{ escape in %q", s)
			}
			digits := s[i+2 : i+2+end]
			if len(digits) == 0 || len(digits) > 6 {
				return nil, fmt.Errorf("escape \\u{%s} wants one to six hex digits", digits)
			}
			v, err := strconv.ParseUint(digits, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid unicode escape \\u{%s}", digits)
			}
			if !utf8.ValidRune(rune(v)) {
				return nil, fmt.Errorf("\\u{%s} is not a valid code point", digits)
			}
			out = utf8.AppendRune(out, rune(v))
			i += 2 + end
		default:
			return nil, fmt.Errorf("unknown escape %q", s[i-1:i+1])
		}
	}
	return out, nil
}
