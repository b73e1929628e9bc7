// Package corpl toggles sections and options of config files in place,
// driven by directive comments embedded in the files themselves:
//
//	<marker> CORPL section <replacement-text>
//	<marker> CORPL option <expr>
//	<marker> CORPL end [<closing-marker>]
//
// The engine operates on raw bytes and assumes nothing about the text
// encoding beyond ASCII-compatible comment markers.
package corpl

import "errors"

// DefaultMaxCommentLen caps auto-detected comment markers unless the
// caller lifts the bound.
const DefaultMaxCommentLen = 4

// ErrNoComment marks files whose comment marker cannot be resolved.
var ErrNoComment = errors.New("could not determine comment character")

// Comment is an explicit comment marker pair. The closing marker is nil
// for line comments.
type Comment struct {
	open  []byte
	close []byte
}

// NewComment builds a marker pair from caller-supplied strings. It
// returns nil when the opening marker is empty: a closing marker alone
// cannot force an explicit comment style.
func NewComment(open, close string) *Comment {
	if open == "" {
		return nil
	}
	c := &Comment{open: []byte(open)}
	if close != "" {
		c.close = []byte(close)
	}
	return c
}

// Open returns the opening marker.
func (c *Comment) Open() []byte { return c.open }

// Close returns the closing marker, or nil when there is none.
func (c *Comment) Close() []byte { return c.close }

// Set holds option and section identifiers, compared by exact byte
// sequence.
type Set map[string]struct{}

// NewSet builds a Set from identifier strings.
func NewSet(idents ...string) Set {
	s := make(Set, len(idents))
	for _, id := range idents {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether ident is in the set.
func (s Set) Has(ident []byte) bool {
	_, ok := s[string(ident)]
	return ok
}

// Options parameterizes one file's processing.
type Options struct {
	// Comment overrides marker auto-detection. The closing marker is
	// only ever taken from here, never detected.
	Comment *Comment
	// Enabled and Disabled are the caller's identifier sets.
	Enabled  Set
	Disabled Set
	// Keep preserves the on-disk state of identifiers found in neither
	// set. Without it, absent identifiers count as disabled.
	Keep bool
	// MaxCommentLen caps auto-detected markers. 0 means no cap.
	MaxCommentLen int
}

// status looks up an identifier's tri-state activation. With Keep, an
// explicit disable wins over an explicit enable and anything else is
// unknown; without it, membership in Enabled decides.
func (o *Options) status(ident []byte) (active, known bool) {
	if o.Keep {
		if o.Disabled.Has(ident) {
			return false, true
		}
		if o.Enabled.Has(ident) {
			return true, true
		}
		return false, false
	}
	return o.Enabled.Has(ident), true
}

// Warning is a non-fatal finding. The scan never stops on one; the
// affected line is left as it was. Line is 1-based, 0 for file-scoped
// warnings.
type Warning struct {
	Line    int
	Message string
	Excerpt string
}

// Result reports what one file's pass did.
type Result struct {
	// Comment is the resolved opening marker.
	Comment []byte
	// LineEnding is "\n" or "\r\n", detected once from the input and
	// applied to every output line.
	LineEnding []byte
	// Changed reports whether the rewritten bytes differ from the input.
	Changed bool
	// Warnings collects non-fatal findings in scan order.
	Warnings []Warning
}

func (r *Result) warn(line int, excerpt []byte, message string) {
	r.Warnings = append(r.Warnings, Warning{Line: line, Message: message, Excerpt: string(excerpt)})
}
