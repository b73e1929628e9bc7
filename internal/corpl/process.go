package corpl

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

type segmentKind uint8

const (
	segNone segmentKind = iota
	segSection
	segOption
)

// segment is the current annotation scope. Only the field matching the
// kind is meaningful: text for sections, act for options. A new
// directive always replaces the whole segment; there is no nesting.
type segment struct {
	kind segmentKind
	text []byte
	act  activation
}

// Transform runs one pass over src and returns the rewritten contents.
// src is never modified. The returned Result is non-nil even on error.
func Transform(src []byte, opts Options) ([]byte, *Result, error) {
	res := &Result{LineEnding: detectLineEnding(src)}
	c, err := resolveComment(src, &opts, res)
	if err != nil {
		return nil, res, err
	}
	res.Comment = c.open

	out := make([]byte, 0, len(src)*2)
	var state segment
	sc := lineScanner{data: src}
	for lineno := 1; ; lineno++ {
		line, ok := sc.next()
		if !ok {
			break
		}
		trimmed := trimBytes(line)
		d, tagged, ok := parseDirective(trimmed, c)
		switch {
		case ok:
			switch d.kind {
			case directiveEnd:
				state = segment{}
			case directiveSection:
				state = segment{kind: segSection, text: d.text}
				if len(d.text) == 0 {
					res.warn(lineno, line,
						"section directive has no replacement text; append the text the lines share to the directive and drop it from them")
				}
				if len(c.close) > 0 {
					res.warn(lineno, line,
						"closing markers are not supported with sections; ignoring the section")
					state = segment{}
				}
			case directiveOption:
				state = segment{kind: segOption, act: evalOption(d.text, &opts)}
			}
		case tagged:
			// Malformed directive (unknown or misspaced verb): the line
			// passes through untouched, never as segment data.
		case len(trimmed) > 0 && state.kind != segNone:
			if rewritten, ok := rewriteLine(line, state, c, &opts, lineno, res); ok {
				out = append(out, rewritten...)
				out = append(out, res.LineEnding...)
				continue
			}
		}
		out = append(out, line...)
		out = append(out, res.LineEnding...)
	}
	res.Changed = !bytes.Equal(out, src)
	return out, res, nil
}

// rewriteLine applies the active segment to one data line. It reports
// false when the line should pass through as-is.
func rewriteLine(line []byte, state segment, c resolved, opts *Options, lineno int, res *Result) ([]byte, bool) {
	switch state.kind {
	case segSection:
		return rewriteSection(line, state.text, c, opts, lineno, res)
	case segOption:
		return rewriteOption(line, state.act, c)
	}
	return nil, false
}

// isActive reports whether rest, the line after its indentation, is not
// commented out, i.e. does not begin with the marker plus a space.
func isActive(rest, open []byte) bool {
	return !(bytes.HasPrefix(rest, open) && len(rest) > len(open) && rest[len(open)] == ' ')
}

// rewriteSection swaps the section literal and `<marker><space>` at the
// start of a line. The target state comes from the identifier after the
// last `<marker><space>` on the line; untagged lines deactivate.
func rewriteSection(line, literal []byte, c resolved, opts *Options, lineno int, res *Result) ([]byte, bool) {
	if len(c.close) > 0 {
		return nil, false
	}
	activate := false
	if idx := bytes.LastIndex(line, c.openSpace); idx >= 0 {
		active, known := opts.status(line[idx+len(c.openSpace):])
		if !known {
			return nil, false
		}
		activate = active
	}
	start := firstNonSpace(line)
	if isActive(line[start:], c.open) == activate {
		return nil, false
	}
	if !activate {
		if !bytes.HasPrefix(line[start:], literal) {
			res.warn(lineno, line,
				"section text not found at the start of the line; leaving it unchanged")
			return nil, false
		}
		out := make([]byte, 0, len(line)+len(c.openSpace))
		out = append(out, line[:start]...)
		out = append(out, c.openSpace...)
		out = append(out, line[start+len(literal):]...)
		return out, true
	}
	out := make([]byte, 0, len(line)+len(literal))
	out = append(out, line[:start]...)
	out = append(out, literal...)
	out = append(out, line[start+len(c.openSpace):]...)
	return out, true
}

// rewriteOption comments or uncomments a line to match the activation.
func rewriteOption(line []byte, act activation, c resolved) ([]byte, bool) {
	start := firstNonSpace(line)
	active := isActive(line[start:], c.open)
	switch {
	case act == activationIgnore || (act == activationYes) == active:
		return nil, false
	case act == activationNo:
		out := make([]byte, 0, len(line)+len(c.openSpace)+len(c.close)+1)
		out = append(out, line[:start]...)
		out = append(out, c.openSpace...)
		out = append(out, line[start:]...)
		if len(c.close) > 0 {
			out = append(out, ' ')
			out = append(out, c.close...)
		}
		return out, true
	default: // activationYes while inactive
		out := make([]byte, 0, len(line))
		out = append(out, line[:start]...)
		base := start + len(c.openSpace)
		if len(c.close) > 0 {
			if end := lastNonSpace(line); end >= base {
				content := line[base:end]
				if cut := len(content) - len(c.close) - 1; cut >= 0 &&
					content[cut] == ' ' && bytes.Equal(content[cut+1:], c.close) {
					out = append(out, content[:cut]...)
					out = append(out, line[end:]...)
					return out, true
				}
			}
			// The closing marker is not where it should be; fall back
			// to stripping only the opening one.
		}
		out = append(out, line[base:]...)
		return out, true
	}
}

// ProcessFile rewrites path in place: the handle is truncated to the
// new length, rewound and rewritten, even when nothing changed.
// Result.Changed reports whether the bytes differ.
func ProcessFile(path string, opts Options) (*Result, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file (check the input path): %w", err)
	}
	defer f.Close()
	src, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	out, res, err := Transform(src, opts)
	if err != nil {
		return res, err
	}
	if err := f.Truncate(int64(len(out))); err != nil {
		return res, fmt.Errorf("failed to set file length: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return res, fmt.Errorf("failed to seek in file: %w", err)
	}
	if _, err := f.Write(out); err != nil {
		return res, fmt.Errorf("failed to write to file: %w", err)
	}
	return res, nil
}
