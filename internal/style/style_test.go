package style

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		name      string
		wantOpen  string
		wantClose string
		wantOK    bool
	}{
		{"go", "//", "", true},
		{"GO", "//", "", true},
		{" python ", "#", "", true},
		{"js", "//", "", true},
		{"yml", "#", "", true},
		{"html", "<!--", "-->", true},
		{"css", "/*", "*/", true},
		{"ini", ";", "", true},
		{"sql", "--", "", true},
		{"batch", "REM", "", true},
		{"slash", "//", "", true},
		{"hash", "#", "", true},
		{"klingon", "", "", false},
	}
	for _, tc := range cases {
		s, ok := Lookup(tc.name)
		if ok != tc.wantOK {
			t.Fatalf("Lookup(%q) ok = %v, want %v", tc.name, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if s.Open != tc.wantOpen || s.Close != tc.wantClose {
			t.Fatalf("Lookup(%q) = %q/%q, want %q/%q", tc.name, s.Open, s.Close, tc.wantOpen, tc.wantClose)
		}
	}
}

func TestByPath(t *testing.T) {
	cases := []struct {
		path     string
		wantOpen string
		wantOK   bool
	}{
		{"main.go", "//", true},
		{"/etc/nginx/app.conf", ";", true},
		{"Makefile", "#", true},
		{"deploy/Dockerfile", "#", true},
		{"app.conf.dev", ";", true},
		{"page.html", "<!--", true},
		{"style.css", "/*", true},
		{".env", "#", true},
		{"README", "", false},
		{"archive.tar.gz", "", false},
	}
	for _, tc := range cases {
		s, ok := ByPath(tc.path)
		if ok != tc.wantOK {
			t.Fatalf("ByPath(%q) ok = %v, want %v", tc.path, ok, tc.wantOK)
		}
		if ok && s.Open != tc.wantOpen {
			t.Fatalf("ByPath(%q) open = %q, want %q", tc.path, s.Open, tc.wantOpen)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("C++"); got != "cpp" {
		t.Fatalf("Normalize(C++) = %q, want cpp", got)
	}
	if got := Normalize("unknown-lang"); got != "unknown-lang" {
		t.Fatalf("Normalize should pass unknown names through, got %q", got)
	}
}
