package corpl

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveCommentPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		opts     Options
		wantOpen string
	}{
		{"hash prefix", "# x\n", Options{}, "#"},
		{"slash prefix", "// x\n", Options{}, "//"},
		{"semicolon prefix", "; x\n", Options{}, ";"},
		{"shebang counts as hash", "#!/bin/sh\n", Options{}, "#"},
		{"well-known prefix beats caller", "# x\n", Options{Comment: NewComment("//", "")}, "#"},
		{"caller override", "[section]\nkey=1\n", Options{Comment: NewComment("--", "")}, "--"},
		{"first-line token", "-- vim: set ft=lua\n", Options{MaxCommentLen: 4}, "--"},
		{"semicolon run resolves by sniffing", ";;config;;\n", Options{MaxCommentLen: 4}, ";"},
		{"unbounded token length", "<!----> config\n", Options{}, "<!---->"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := &Result{}
			c, err := resolveComment([]byte(tc.src), &tc.opts, res)
			if err != nil {
				t.Fatalf("resolveComment error: %v", err)
			}
			if string(c.open) != tc.wantOpen {
				t.Fatalf("open marker mismatch: got %q want %q", c.open, tc.wantOpen)
			}
			if string(c.openSpace) != tc.wantOpen+" " {
				t.Fatalf("openSpace mismatch: got %q", c.openSpace)
			}
		})
	}
}

func TestResolveCommentUncommonWarning(t *testing.T) {
	res := &Result{}
	c, err := resolveComment([]byte("-- config\n"), &Options{MaxCommentLen: DefaultMaxCommentLen}, res)
	if err != nil {
		t.Fatalf("resolveComment error: %v", err)
	}
	if string(c.open) != "--" {
		t.Fatalf("open marker mismatch: got %q", c.open)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(res.Warnings))
	}
	if !strings.Contains(res.Warnings[0].Message, "uncommon comment") {
		t.Fatalf("unexpected warning: %q", res.Warnings[0].Message)
	}
	if res.Warnings[0].Line != 1 {
		t.Fatalf("warning line mismatch: got %d want 1", res.Warnings[0].Line)
	}
}

func TestResolveCommentFailures(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts Options
	}{
		{"empty file", "", Options{}},
		{"blank first line", "   \nkey=1\n", Options{}},
		{"token over the cap", "::config::\nkey=1\n", Options{MaxCommentLen: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolveComment([]byte(tc.src), &tc.opts, &Result{})
			if !errors.Is(err, ErrNoComment) {
				t.Fatalf("expected ErrNoComment, got %v", err)
			}
			if !strings.Contains(err.Error(), "could not determine comment character") {
				t.Fatalf("unexpected diagnostic: %v", err)
			}
		})
	}
}

func TestResolveCommentClosingOnlyFromCaller(t *testing.T) {
	res := &Result{}
	c, err := resolveComment([]byte("/* x */\n"), &Options{Comment: NewComment("/*", "*/")}, res)
	if err != nil {
		t.Fatalf("resolveComment error: %v", err)
	}
	if string(c.open) != "/*" || string(c.close) != "*/" {
		t.Fatalf("marker pair mismatch: got %q %q", c.open, c.close)
	}

	// Sniffed opening markers still pick up the caller's closing marker.
	c, err = resolveComment([]byte("# x\n"), &Options{Comment: NewComment("/*", "*/")}, res)
	if err != nil {
		t.Fatalf("resolveComment error: %v", err)
	}
	if string(c.open) != "#" || string(c.close) != "*/" {
		t.Fatalf("marker pair mismatch: got %q %q", c.open, c.close)
	}
}

func TestNewCommentRequiresOpen(t *testing.T) {
	if c := NewComment("", "*/"); c != nil {
		t.Fatalf("expected nil comment for empty opening marker, got %+v", c)
	}
	c := NewComment("//", "")
	if c == nil || string(c.Open()) != "//" || c.Close() != nil {
		t.Fatalf("unexpected comment: %+v", c)
	}
}
