// Package bytesplit cuts byte slices on arbitrary separators without
// copying. Separators are located greedily left to right, never overlap,
// and are consumed whole: yielded slices contain no separator bytes, and
// concatenating the slices interleaved with the matched separators
// reconstructs the input.
package bytesplit

import "bytes"

// A MatchFunc reports whether a separator begins at the start of rest.
// It returns the separator's length in bytes and true, or 0 and false
// when rest does not start with one. Zero-length matches are ignored.
type MatchFunc func(rest []byte) (n int, ok bool)

// Iter yields the runs between separator matches. It is single-use and
// lazy: nothing is scanned until Next is called, and once exhausted it
// keeps reporting false.
type Iter struct {
	data  []byte
	match MatchFunc
	pos   int
	done  bool
}

// Split iterates over data cut on the byte sequence sep.
// An empty sep never matches, so the whole input comes back in one piece.
func Split(data, sep []byte) *Iter {
	return SplitFunc(data, func(rest []byte) (int, bool) {
		if len(sep) > 0 && bytes.HasPrefix(rest, sep) {
			return len(sep), true
		}
		return 0, false
	})
}

// SplitFunc iterates over data cut wherever match fires.
func SplitFunc(data []byte, match MatchFunc) *Iter {
	return &Iter{data: data, match: match}
}

// Next returns the run up to the next separator and consumes the
// separator. The final run, after the last match or when there was no
// match at all, is yielded even if empty; afterwards Next reports false.
func (it *Iter) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}
	start := it.pos
	for it.pos < len(it.data) {
		if n, ok := it.match(it.data[it.pos:]); ok && n > 0 {
			run := it.data[start:it.pos]
			it.pos += n
			return run, true
		}
		it.pos++
	}
	it.done = true
	return it.data[start:], true
}
