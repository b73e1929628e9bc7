package splitstream

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// chunkReader yields at most n bytes per Read to exercise separator
// carries across window boundaries.
type chunkReader struct {
	data []byte
	n    int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.n
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func TestCopy(t *testing.T) {
	cases := []struct {
		name string
		in   string
		sep  string
		join string
		want string
	}{
		{name: "Basic", in: "a\x00b\x00c", sep: "\x00", join: "\n", want: "a\nb\nc"},
		{name: "TrailingSep", in: "a\x00", sep: "\x00", join: "\n", want: "a\n"},
		{name: "LeadingSep", in: "\x00a", sep: "\x00", join: "-", want: "-a"},
		{name: "AdjacentSeps", in: "a\x00\x00b", sep: "\x00", join: ",", want: "a,,b"},
		{name: "MultiByte", in: "one--two--three", sep: "--", join: " ", want: "one two three"},
		{name: "EmptyJoin", in: "a, b, c", sep: ", ", join: "", want: "abc"},
		{name: "NoMatch", in: "plain text", sep: "\x00", join: "\n", want: "plain text"},
		{name: "EmptyInput", in: "", sep: "\x00", join: "\n", want: ""},
		{name: "SepOnly", in: "--", sep: "--", join: "!", want: "!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := Copy(&out, strings.NewReader(tc.in), []byte(tc.sep), []byte(tc.join))
			if err != nil {
				t.Fatalf("Copy failed: %v", err)
			}
			if got := out.String(); got != tc.want {
				t.Fatalf("Copy(%q, %q, %q) = %q, want %q", tc.in, tc.sep, tc.join, got, tc.want)
			}
			if n != int64(out.Len()) {
				t.Fatalf("written count %d does not match output length %d", n, out.Len())
			}
		})
	}
}

func TestCopyMatchesReplaceAll(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"ab",
		"abab",
		"xabyabzab",
		"aabbaabb--aabb",
		strings.Repeat("entry--", 100) + "tail",
		"--start--middle--end--",
	}
	seps := []string{"--", "ab", "aab", "x"}
	join := []byte("|")

	for _, in := range inputs {
		for _, sep := range seps {
			want := string(bytes.ReplaceAll([]byte(in), []byte(sep), join))
			for _, chunk := range []int{1, 2, 3, 7, 4096} {
				var out bytes.Buffer
				if _, err := Copy(&out, &chunkReader{data: []byte(in), n: chunk}, []byte(sep), join); err != nil {
					t.Fatalf("Copy(%q, sep=%q, chunk=%d) failed: %v", in, sep, chunk, err)
				}
				if got := out.String(); got != want {
					t.Fatalf("Copy(%q, sep=%q, chunk=%d) = %q, want %q", in, sep, chunk, got, want)
				}
			}
		}
	}
}

func TestCopyEmptySepPassesThrough(t *testing.T) {
	in := "no separators \x00 anywhere"
	var out bytes.Buffer
	if _, err := Copy(&out, strings.NewReader(in), nil, []byte("|")); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if out.String() != in {
		t.Fatalf("expected pass-through, got %q", out.String())
	}
}
