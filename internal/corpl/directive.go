package corpl

import "bytes"

// directiveTag separates the comment marker from the directive verb.
// Matching is case-sensitive throughout.
const directiveTag = " CORPL "

type directiveKind uint8

const (
	directiveEnd directiveKind = iota
	directiveSection
	directiveOption
)

// directive is one parsed instruction line. text holds the section's
// replacement literal or the option expression.
type directive struct {
	kind directiveKind
	text []byte
}

// parseDirective classifies a trimmed line. Directive lines read
// `<marker> CORPL end|section …|option …`. tagged reports whether the
// `<marker> CORPL ` prefix matched at all: a tagged line whose verb
// does not parse is a malformed directive, not segment data.
func parseDirective(trimmed []byte, c resolved) (d directive, tagged, ok bool) {
	if len(trimmed) < len(c.open)+len(directiveTag) ||
		!bytes.HasPrefix(trimmed, c.open) ||
		!bytes.HasPrefix(trimmed[len(c.open):], []byte(directiveTag)) {
		return directive{}, false, false
	}
	rest := trimmed[len(c.open)+len(directiveTag):]
	switch {
	case isEndDirective(rest, c.close):
		return directive{kind: directiveEnd}, true, true
	case bytes.HasPrefix(rest, []byte("section ")):
		return directive{kind: directiveSection, text: rest[len("section "):]}, true, true
	case bytes.HasPrefix(rest, []byte("option ")):
		expr := rest[len("option "):]
		// With a closing marker configured, the directive line ends
		// with its echo; strip it off the expression when present.
		if len(c.close) > 0 {
			if cut := len(expr) - len(c.close) - 1; cut >= 0 &&
				expr[cut] == ' ' && bytes.Equal(expr[cut+1:], c.close) {
				expr = expr[:cut]
			}
		}
		return directive{kind: directiveOption, text: expr}, true, true
	}
	return directive{}, true, false
}

// isEndDirective wants exactly `end`, or `end <closing-marker>` when a
// closing marker is configured.
func isEndDirective(rest, close []byte) bool {
	if len(close) == 0 {
		return bytes.Equal(rest, []byte("end"))
	}
	return bytes.HasPrefix(rest, []byte("end ")) &&
		bytes.Equal(rest[len("end "):], close)
}
