package corpl

var (
	lfEnding   = []byte("\n")
	crlfEnding = []byte("\r\n")
)

// detectLineEnding picks the output terminator from the first CR or LF
// in the file. Files without either get "\n".
func detectLineEnding(data []byte) []byte {
	for _, b := range data {
		switch b {
		case '\r':
			return crlfEnding
		case '\n':
			return lfEnding
		}
	}
	return lfEnding
}

// lineScanner walks a buffer line by line without copying.
type lineScanner struct {
	data []byte
	pos  int
}

// next yields the line without its terminator. CRLF counts as one
// terminator; a final line lacking one is still yielded.
func (s *lineScanner) next() ([]byte, bool) {
	if s.pos >= len(s.data) {
		return nil, false
	}
	start := s.pos
	for s.pos < len(s.data) {
		b := s.data[s.pos]
		if b != '\n' && b != '\r' {
			s.pos++
			continue
		}
		line := s.data[start:s.pos]
		if b == '\r' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '\n' {
			s.pos += 2
		} else {
			s.pos++
		}
		return line, true
	}
	return s.data[start:], true
}

// isSpace matches ASCII whitespace (space, tab through carriage return).
// The engine never applies Unicode rules to raw bytes.
func isSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

// firstNonSpace returns the index of the first non-whitespace byte.
// All-whitespace lines map to 0; callers only use the index after
// checking that the trimmed line is non-empty.
func firstNonSpace(line []byte) int {
	for i, b := range line {
		if !isSpace(b) {
			return i
		}
	}
	return 0
}

// lastNonSpace returns one past the index of the last non-whitespace
// byte, 0 for all-whitespace lines.
func lastNonSpace(line []byte) int {
	for i := len(line) - 1; i >= 0; i-- {
		if !isSpace(line[i]) {
			return i + 1
		}
	}
	return 0
}

// trimBytes trims ASCII whitespace from both edges.
func trimBytes(line []byte) []byte {
	return line[firstNonSpace(line):lastNonSpace(line)]
}
