// Package version records build metadata for the iclu tools.
// The variables are overridden at build time:
//
//	go build -ldflags "-X github.com/Icelk/iclu/internal/version.Version=1.2.3"
package version

import "strings"

var (
	// Version is the semantic version of the toolset.
	Version = "0.1.0-dev"

	// Commit is an optional git commit hash.
	Commit = ""

	// Date is an optional build date in ISO-8601.
	Date = ""
)

// String renders the version plus whatever build metadata was recorded.
func String() string {
	s := strings.TrimSpace(Version)
	if s == "" {
		s = "dev"
	}
	var meta []string
	if c := strings.TrimSpace(Commit); c != "" {
		meta = append(meta, c)
	}
	if d := strings.TrimSpace(Date); d != "" {
		meta = append(meta, d)
	}
	if len(meta) > 0 {
		s += " (" + strings.Join(meta, " ") + ")"
	}
	return s
}
