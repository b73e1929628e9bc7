package corpl

import (
	"bytes"
	"fmt"
)

// commonMarkers are sniffed at the very start of the file, before any
// caller override. Order matters: `#` is tried before `//` and `;`.
var commonMarkers = [][]byte{[]byte("#"), []byte("//"), []byte(";")}

// resolved is the marker pair the scan runs with. openSpace caches
// `<open><space>`, the tag every activation check looks for.
type resolved struct {
	open      []byte
	close     []byte
	openSpace []byte
}

func newResolved(open, close []byte) resolved {
	tag := make([]byte, 0, len(open)+1)
	tag = append(tag, open...)
	tag = append(tag, ' ')
	return resolved{open: open, close: close, openSpace: tag}
}

// resolveComment picks the opening marker: a well-known file prefix
// wins, then the caller's override, then the first line's first token
// if it fits the length cap. The closing marker only ever comes from
// the caller. Adopting a first-line token is reported as a warning.
func resolveComment(src []byte, opts *Options, res *Result) (resolved, error) {
	var close []byte
	if opts.Comment != nil {
		close = opts.Comment.close
	}
	for _, m := range commonMarkers {
		if bytes.HasPrefix(src, m) {
			return newResolved(m, close), nil
		}
	}
	if opts.Comment != nil {
		return newResolved(opts.Comment.open, close), nil
	}
	sc := lineScanner{data: src}
	first, ok := sc.next()
	if !ok {
		return resolved{}, fmt.Errorf("%w: file too short", ErrNoComment)
	}
	token := firstToken(first)
	if len(token) == 0 {
		return resolved{}, fmt.Errorf("%w: first line is blank", ErrNoComment)
	}
	if opts.MaxCommentLen > 0 && len(token) > opts.MaxCommentLen {
		return resolved{}, fmt.Errorf(
			"%w: put it, and only it, on the first line or pass -c with the comment string",
			ErrNoComment)
	}
	res.warn(1, first, fmt.Sprintf("continuing with uncommon comment: %q", token))
	return newResolved(token, close), nil
}

// firstToken returns the first whitespace-delimited token of a line,
// empty when there is none.
func firstToken(line []byte) []byte {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	start := i
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	return line[start:i]
}
