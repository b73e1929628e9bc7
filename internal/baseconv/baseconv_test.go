package baseconv

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		in   string
		sep  string
		base int
		want string
	}{
		{name: "Decimal", in: "72\n105\n33\n", sep: "\n", base: 10, want: "Hi!"},
		{name: "Hex", in: "48 65 78", sep: " ", base: 16, want: "Hex"},
		{name: "HexUppercase", in: "4A", sep: "\n", base: 16, want: "J"},
		{name: "Binary", in: "1000001\n1000010", sep: "\n", base: 2, want: "AB"},
		{name: "Base36", in: "z", sep: "\n", base: 36, want: "#"},
		{name: "CommaSep", in: "97,98,99", sep: ",", base: 10, want: "abc"},
		{name: "BlankTokens", in: "  97 \n\n 98 \n", sep: "\n", base: 10, want: "ab"},
		{name: "Unicode", in: "129409", sep: "\n", base: 10, want: "\U0001f981"},
		{name: "Empty", in: "", sep: "\n", base: 10, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert([]byte(tc.in), tc.sep, tc.base)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Convert(%q, %q, %d) = %q, want %q", tc.in, tc.sep, tc.base, got, tc.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := Convert([]byte("10"), "\n", 1); err == nil {
		t.Fatal("expected error for base below 2")
	}
	if _, err := Convert([]byte("10"), "\n", 37); err == nil {
		t.Fatal("expected error for base above 36")
	}
	if _, err := Convert([]byte("12x"), "\n", 10); err == nil {
		t.Fatal("expected error for invalid digit")
	}
	if _, err := Convert([]byte("ff"), "\n", 10); err == nil {
		t.Fatal("expected error for hex digits in base 10")
	}
	if _, err := Convert([]byte("-5"), "\n", 10); err == nil {
		t.Fatal("expected error for negative number")
	}
	if _, err := Convert([]byte("55296"), "\n", 10); err == nil {
		t.Fatal("expected error for surrogate code point")
	}
	if _, err := Convert([]byte("1114112"), "\n", 10); err == nil {
		t.Fatal("expected error beyond the last code point")
	}
	if _, err := Convert([]byte{0xff, 0xfe}, "\n", 10); err == nil {
		t.Fatal("expected error for invalid UTF-8 input")
	}
	if _, err := Convert([]byte(strings.Repeat("9", 20)), "\n", 10); err == nil {
		t.Fatal("expected error for integer overflow")
	}
}
