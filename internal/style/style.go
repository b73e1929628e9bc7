// Package style maps languages and file names to the comment marker
// pair that toggles whole lines in that language.
package style

import (
	"path/filepath"
	"strings"
)

// Style is a comment marker pair. Close is empty for line comments.
type Style struct {
	Name  string
	Open  string
	Close string
}

var (
	styleHash    = Style{Name: "hash", Open: "#"}
	styleSlash   = Style{Name: "slash", Open: "//"}
	styleSemi    = Style{Name: "semicolon", Open: ";"}
	styleDash    = Style{Name: "dash", Open: "--"}
	stylePercent = Style{Name: "percent", Open: "%"}
	styleQuote   = Style{Name: "quote", Open: "\""}
	styleHTML    = Style{Name: "html", Open: "<!--", Close: "-->"}
	styleCSS     = Style{Name: "css", Open: "/*", Close: "*/"}
	styleJinja   = Style{Name: "jinja", Open: "{#", Close: "#}"}
	styleBatch   = Style{Name: "batch", Open: "REM"}
)

var languageStyles = map[string]Style{
	"c":          styleSlash,
	"cpp":        styleSlash,
	"go":         styleSlash,
	"java":       styleSlash,
	"javascript": styleSlash,
	"typescript": styleSlash,
	"kotlin":     styleSlash,
	"scala":      styleSlash,
	"swift":      styleSlash,
	"rust":       styleSlash,
	"dart":       styleSlash,
	"php":        styleSlash,
	"proto":      styleSlash,
	"zig":        styleSlash,
	"hcl":        styleSlash,
	"terraform":  styleSlash,
	"csharp":     styleSlash,
	"python":     styleHash,
	"ruby":       styleHash,
	"perl":       styleHash,
	"shell":      styleHash,
	"fish":       styleHash,
	"powershell": styleHash,
	"yaml":       styleHash,
	"toml":       styleHash,
	"make":       styleHash,
	"cmake":      styleHash,
	"dockerfile": styleHash,
	"dotenv":     styleHash,
	"properties": styleHash,
	"elixir":     styleHash,
	"julia":      styleHash,
	"nim":        styleHash,
	"r":          styleHash,
	"crontab":    styleHash,
	"ini":        styleSemi,
	"lisp":       styleSemi,
	"scheme":     styleSemi,
	"racket":     styleSemi,
	"clojure":    styleSemi,
	"asm":        styleSemi,
	"sql":        styleDash,
	"haskell":    styleDash,
	"lua":        styleDash,
	"elm":        styleDash,
	"ada":        styleDash,
	"latex":      stylePercent,
	"erlang":     stylePercent,
	"vim":        styleQuote,
	"html":       styleHTML,
	"xml":        styleHTML,
	"vue":        styleHTML,
	"svelte":     styleHTML,
	"markdown":   styleHTML,
	"css":        styleCSS,
	"scss":       styleCSS,
	"less":       styleCSS,
	"jinja":      styleJinja,
	"twig":       styleJinja,
	"django":     styleJinja,
	"batch":      styleBatch,
}

var langAliases = map[string]string{
	"c#":     "csharp",
	"cs":     "csharp",
	"c++":    "cpp",
	"cc":     "cpp",
	"js":     "javascript",
	"mjs":    "javascript",
	"jsx":    "javascript",
	"ts":     "typescript",
	"tsx":    "typescript",
	"kt":     "kotlin",
	"rb":     "ruby",
	"py":     "python",
	"ps":     "powershell",
	"ps1":    "powershell",
	"bash":   "shell",
	"sh":     "shell",
	"zsh":    "shell",
	"mk":     "make",
	"tf":     "terraform",
	"yml":    "yaml",
	"md":     "markdown",
	"tex":    "latex",
	"cron":   "crontab",
	"golang": "go",
	"viml":   "vim",
}

var basenameStyles = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"justfile":       "make",
	"cmakelists.txt": "cmake",
	"dockerfile":     "dockerfile",
	"crontab":        "crontab",
	".env":           "dotenv",
	"vimrc":          "vim",
	".vimrc":         "vim",
	"gemfile":        "ruby",
	"rakefile":       "ruby",
	"vagrantfile":    "ruby",
}

var extensionStyles = map[string]string{
	".c":          "c",
	".h":          "c",
	".cc":         "cpp",
	".cpp":        "cpp",
	".hpp":        "cpp",
	".go":         "go",
	".java":       "java",
	".js":         "javascript",
	".mjs":        "javascript",
	".jsx":        "javascript",
	".ts":         "typescript",
	".tsx":        "typescript",
	".kt":         "kotlin",
	".scala":      "scala",
	".swift":      "swift",
	".rs":         "rust",
	".dart":       "dart",
	".php":        "php",
	".proto":      "proto",
	".zig":        "zig",
	".hcl":        "hcl",
	".tf":         "terraform",
	".tfvars":     "terraform",
	".cs":         "csharp",
	".py":         "python",
	".rb":         "ruby",
	".pl":         "perl",
	".pm":         "perl",
	".sh":         "shell",
	".bash":       "shell",
	".zsh":        "shell",
	".fish":       "fish",
	".ps1":        "powershell",
	".psm1":       "powershell",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".mk":         "make",
	".make":       "make",
	".cmake":      "cmake",
	".dockerfile": "dockerfile",
	".env":        "dotenv",
	".properties": "properties",
	".ex":         "elixir",
	".exs":        "elixir",
	".jl":         "julia",
	".nim":        "nim",
	".r":          "r",
	".ini":        "ini",
	".cfg":        "ini",
	".conf":       "ini",
	".lisp":       "lisp",
	".cl":         "lisp",
	".el":         "lisp",
	".scm":        "scheme",
	".rkt":        "racket",
	".clj":        "clojure",
	".edn":        "clojure",
	".s":          "asm",
	".asm":        "asm",
	".sql":        "sql",
	".hs":         "haskell",
	".lua":        "lua",
	".elm":        "elm",
	".adb":        "ada",
	".ads":        "ada",
	".tex":        "latex",
	".bib":        "latex",
	".erl":        "erlang",
	".hrl":        "erlang",
	".vim":        "vim",
	".html":       "html",
	".htm":        "html",
	".xml":        "xml",
	".svg":        "xml",
	".plist":      "xml",
	".vue":        "vue",
	".svelte":     "svelte",
	".md":         "markdown",
	".css":        "css",
	".scss":       "scss",
	".less":       "less",
	".jinja":      "jinja",
	".jinja2":     "jinja",
	".twig":       "twig",
	".bat":        "batch",
	".cmd":        "batch",
}

// Normalize canonicalizes a language name or alias, lowercased and
// trimmed. Unknown names come back as-is (lowercased) so the caller's
// error can echo them.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

// familyStyles lets marker families be named directly, so --style
// accepts "slash" as readily as "go".
var familyStyles = map[string]Style{
	"hash":      styleHash,
	"slash":     styleSlash,
	"semicolon": styleSemi,
	"dash":      styleDash,
	"percent":   stylePercent,
	"quote":     styleQuote,
	"html":      styleHTML,
	"css":       styleCSS,
	"jinja":     styleJinja,
	"batch":     styleBatch,
}

// Lookup resolves a language name, alias or marker-family name to its
// marker pair.
func Lookup(name string) (Style, bool) {
	n := Normalize(name)
	if s, ok := languageStyles[n]; ok {
		return s, true
	}
	s, ok := familyStyles[n]
	return s, ok
}

// ByPath guesses the marker pair from a file's basename or extension.
func ByPath(path string) (Style, bool) {
	base := strings.ToLower(filepath.Base(path))
	if lang, ok := basenameStyles[base]; ok {
		return languageStyles[lang], true
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return Style{}, false
	}
	if lang, ok := extensionStyles[ext]; ok {
		return languageStyles[lang], true
	}
	// Layered names like app.conf.dev: try the inner extension too.
	stem := strings.TrimSuffix(base, ext)
	if inner := filepath.Ext(stem); inner != "" {
		if lang, ok := extensionStyles[inner]; ok {
			return languageStyles[lang], true
		}
	}
	if lang, ok := basenameStyles[stem]; ok {
		return languageStyles[lang], true
	}
	return Style{}, false
}
