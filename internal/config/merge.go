package config

import "strings"

// Merge applies config layers over base in order; within each layer a
// set field fully replaces the accumulated value. The canonical order
// is config file, then environment, then flags.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Comment = ResolveString(out.Comment, layer.Corpl.Comment)
		out.ClosingComment = ResolveString(out.ClosingComment, layer.Corpl.ClosingComment)
		out.LongComment = ResolveBool(out.LongComment, layer.Corpl.LongComment)
		out.Keep = ResolveBool(out.Keep, layer.Corpl.Keep)
		out.Enable = ResolveStrings(out.Enable, layer.Corpl.Enable)
		out.Disable = ResolveStrings(out.Disable, layer.Corpl.Disable)
		out.Style = ResolveAndTrim(out.Style, layer.Corpl.Style)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
