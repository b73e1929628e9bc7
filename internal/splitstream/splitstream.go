// Package splitstream rewrites a byte stream by replacing every
// occurrence of one separator with another. It works on fixed-size
// windows so memory stays bounded no matter how large the input or how
// far apart the separators are.
package splitstream

import (
	"fmt"
	"io"

	"github.com/Icelk/iclu/internal/bytesplit"
)

const windowSize = 4096

// Copy streams src to dst, substituting join for each occurrence of
// sep. An empty sep copies the stream through untouched. The count of
// bytes written to dst is returned.
//
// A separator may straddle window boundaries, so the tail of the last
// unterminated entry (up to len(sep)-1 bytes) is carried into the next
// window instead of being emitted.
func Copy(dst io.Writer, src io.Reader, sep, join []byte) (int64, error) {
	var written int64
	emit := func(p []byte) error {
		if len(p) == 0 {
			return nil
		}
		n, err := dst.Write(p)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	// The window always admits at least one full separator plus
	// progress, even when the whole carry is occupied.
	buf := make([]byte, len(sep)+windowSize)
	hold := len(sep) - 1
	if hold < 0 {
		hold = 0
	}
	left := 0

	flush := func(data []byte, final bool) error {
		it := bytesplit.Split(data, sep)
		prev, _ := it.Next()
		for {
			cur, ok := it.Next()
			if !ok {
				break
			}
			if err := emit(prev); err != nil {
				return err
			}
			if err := emit(join); err != nil {
				return err
			}
			prev = cur
		}
		if final {
			left = 0
			return emit(prev)
		}
		cut := len(prev) - hold
		if cut < 0 {
			cut = 0
		}
		if err := emit(prev[:cut]); err != nil {
			return err
		}
		left = copy(buf, prev[cut:])
		return nil
	}

	for {
		n, readErr := src.Read(buf[left:])
		if n > 0 {
			if err := flush(buf[:left+n], false); err != nil {
				return written, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return written, fmt.Errorf("read input: %w", readErr)
		}
	}
	return written, flush(buf[:left], true)
}
