package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, in string, out io.Writer, args ...string) error {
	t.Helper()
	flagBatch, flagForce = false, false
	for _, name := range []string{"batch", "force"} {
		rootCmd.Flags().Lookup(name).Changed = false
	}
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestBatchPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "script.sh", want: "script.bat"},
		{in: "script", want: "script.bat"},
		{in: "dir/archive.tar.sh", want: "dir/archive.tar.bat"},
		{in: ".sh", want: ".sh.bat"},
	}
	for _, tc := range cases {
		if got := batchPath(tc.in); got != tc.want {
			t.Fatalf("batchPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExecuteConvertsScript(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "greet.sh")
	script := "#!/bin/sh\n# greet\necho Hello $1\nls\n"
	if err := os.WriteFile(src, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "", io.Discard, "-b", src); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "greet.bat"))
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	want := "@echo off\r\nREM greet\r\necho Hello %1\r\ndir\r\n"
	if string(got) != want {
		t.Fatalf("converted script = %q, want %q", got, want)
	}
}

func TestExecuteRequiresBatchFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.sh")
	if err := os.WriteFile(src, []byte("ls\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "", io.Discard, src); err == nil {
		t.Fatal("expected an error without --batch")
	}
}

func TestExecuteOverwritePrompt(t *testing.T) {
	write := func(t *testing.T, dir string) (src, target string) {
		t.Helper()
		src = filepath.Join(dir, "a.sh")
		target = filepath.Join(dir, "a.bat")
		if err := os.WriteFile(src, []byte("ls\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		return src, target
	}

	t.Run("Declined", func(t *testing.T) {
		src, target := write(t, t.TempDir())
		if err := execute(t, "n\n", io.Discard, "-b", src); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "old" {
			t.Fatalf("declined overwrite still rewrote the target: %q", got)
		}
	})

	t.Run("Accepted", func(t *testing.T) {
		src, target := write(t, t.TempDir())
		if err := execute(t, "y\n", io.Discard, "-b", src); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(got), "@echo off\r\n") {
			t.Fatalf("accepted overwrite left the target stale: %q", got)
		}
	})

	t.Run("Forced", func(t *testing.T) {
		src, target := write(t, t.TempDir())
		var out bytes.Buffer
		if err := execute(t, "", &out, "-b", "-f", src); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if strings.Contains(out.String(), "overwrite") {
			t.Fatalf("forced run still prompted: %q", out.String())
		}
		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(got), "@echo off\r\n") {
			t.Fatalf("forced overwrite left the target stale: %q", got)
		}
	})
}

func TestExecuteRejectsBinary(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bin.sh")
	if err := os.WriteFile(src, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "", io.Discard, "-b", src); err == nil {
		t.Fatal("expected an error for a non UTF-8 script")
	}
}
