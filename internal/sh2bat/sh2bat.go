// Package sh2bat converts simple POSIX shell scripts to Windows batch
// files. It handles the constructs that show up in glue scripts:
// comments, environment exports, variable interpolation and a table of
// common commands. Anything it does not recognize passes through
// unchanged.
package sh2bat

import (
	"regexp"
	"strings"
)

// commandMap rewrites the first word of a line. Flag-sensitive
// commands (rm, cp) are handled separately before this table applies.
var commandMap = map[string]string{
	"mv":    "move",
	"ls":    "dir",
	"cat":   "type",
	"clear": "cls",
	"grep":  "findstr",
	"pwd":   "cd",
	"rm":    "del",
	"cp":    "copy",
}

var (
	varPattern = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)
	// Batch positional parameters keep the %1 form, no closing sign.
	positionalPattern = regexp.MustCompile(`\$([0-9])\b`)
)

// Convert translates a shell script into batch. The result always
// starts with @echo off and uses CRLF line endings.
func Convert(script string) string {
	lines := strings.Split(script, "\n")
	out := make([]string, 0, len(lines)+1)
	out = append(out, "@echo off")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 && strings.HasPrefix(line, "#!") {
			continue
		}
		out = append(out, convertLine(line))
	}
	return strings.Join(out, "\r\n")
}

func convertLine(line string) string {
	trimmed := strings.TrimSpace(line)
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "#"):
		return indent + "REM " + strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
	case trimmed == "set -x":
		return indent + "@echo on"
	case trimmed == "set +x":
		return indent + "@echo off"
	}

	trimmed = substituteVars(trimmed)

	if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
		return indent + "set " + rest
	}
	if rest, ok := strings.CutPrefix(trimmed, "unset "); ok {
		return indent + "set " + strings.TrimSpace(rest) + "="
	}

	fields := strings.SplitN(trimmed, " ", 3)
	cmd := fields[0]

	// Recursive deletes and copies change the command, not just its name.
	if cmd == "rm" && len(fields) > 1 && isRecursiveFlag(fields[1]) {
		return indent + "rmdir /s /q " + strings.Join(fields[2:], " ")
	}
	if cmd == "cp" && len(fields) > 1 && fields[1] == "-r" {
		return indent + "xcopy /e /i " + strings.Join(fields[2:], " ")
	}

	if replacement, ok := commandMap[cmd]; ok {
		fields[0] = replacement
		return indent + strings.Join(fields, " ")
	}
	return indent + trimmed
}

func isRecursiveFlag(flag string) bool {
	switch flag {
	case "-r", "-rf", "-fr", "-R", "-Rf":
		return true
	}
	return false
}

func substituteVars(line string) string {
	line = strings.ReplaceAll(line, "$@", "%*")
	line = positionalPattern.ReplaceAllString(line, "%$1")
	return varPattern.ReplaceAllString(line, "%${1}${2}%")
}
