package config

import (
	"github.com/Icelk/iclu/internal/corpl"
)

// CorplConfig is one layer of corpl settings. Nil fields mean "not set
// here"; later layers override earlier ones field by field.
type CorplConfig struct {
	Comment        *string   `yaml:"comment" toml:"comment" json:"comment"`
	ClosingComment *string   `yaml:"closing_comment" toml:"closing_comment" json:"closing_comment"`
	LongComment    *bool     `yaml:"long_comment" toml:"long_comment" json:"long_comment"`
	Keep           *bool     `yaml:"keep" toml:"keep" json:"keep"`
	Enable         *[]string `yaml:"enable" toml:"enable" json:"enable"`
	Disable        *[]string `yaml:"disable" toml:"disable" json:"disable"`
	Style          *string   `yaml:"style" toml:"style" json:"style"`
}

// Config is the on-disk shape of an iclu config file.
type Config struct {
	Corpl CorplConfig `yaml:"corpl" toml:"corpl" json:"corpl"`
	Color *string     `yaml:"color" toml:"color" json:"color"`
}

// Settings is the flattened result of merging defaults, config file,
// environment and flags.
type Settings struct {
	Comment        string
	ClosingComment string
	LongComment    bool
	Keep           bool
	Enable         []string
	Disable        []string
	Style          string
	Color          string
}

// Defaults returns the baseline settings before any layer applies.
func Defaults() Settings {
	return Settings{Color: "auto"}
}

// EngineOptions builds engine options from the merged settings. A
// non-empty disable list implies keep, matching the CLI contract.
func (s Settings) EngineOptions() corpl.Options {
	maxLen := corpl.DefaultMaxCommentLen
	if s.LongComment {
		maxLen = 0
	}
	return corpl.Options{
		Comment:       corpl.NewComment(s.Comment, s.ClosingComment),
		Enabled:       corpl.NewSet(s.Enable...),
		Disabled:      corpl.NewSet(s.Disable...),
		Keep:          s.Keep || len(s.Disable) > 0,
		MaxCommentLen: maxLen,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
