package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	flagBinary, flagHex, flagDecimal, flagRadix, flagSep = false, false, false, 10, "\n"
	for _, name := range []string{"binary", "hex", "decimal", "radix", "separator"} {
		rootCmd.Flags().Lookup(name).Changed = false
	}
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExecute(t *testing.T) {
	cases := []struct {
		name string
		in   string
		args []string
		want string
	}{
		{name: "DecimalDefault", in: "72\n105\n33", want: "Hi!\n"},
		{name: "Hex", in: "48,65,6c,6c,6f", args: []string{"-h", "-s", ","}, want: "Hello\n"},
		{name: "Binary", in: "1001000 1101001", args: []string{"-b", "-s", " "}, want: "Hi\n"},
		{name: "Radix", in: "w 1t", args: []string{"-r", "36", "-s", " "}, want: " A\n"},
		{name: "BlankEntriesSkipped", in: "72\n\n 105 \n", want: "Hi\n"},
		{name: "EmptyInput", in: "", want: "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.in, tc.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error: %v", tc.args, err)
			}
			if got != tc.want {
				t.Fatalf("output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		args []string
	}{
		{name: "TwoBases", in: "1", args: []string{"-b", "-h"}},
		{name: "RadixTooSmall", in: "1", args: []string{"-r", "1"}},
		{name: "RadixTooLarge", in: "1", args: []string{"-r", "37"}},
		{name: "BadDigit", in: "12x"},
		{name: "HexDigitInDecimal", in: "ff"},
		{name: "Surrogate", in: "55296"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.in, tc.args...); err == nil {
				t.Fatalf("Execute(%v) with input %q expected an error", tc.args, tc.in)
			}
		})
	}
}
