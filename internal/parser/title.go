package parser

import "strings"

// PrepareTitle terminates the first line of text with a full stop so that a
// sentence splitter emits it as a sentence of its own.
func PrepareTitle(text string) string {
	line, rest, found := strings.Cut(text, "\n")
	trimmed := strings.TrimRight(line, " \t\r")
	if trimmed == "" || strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		return text
	}
	line = trimmed + "."
	if !found {
		return line
	}
	return line + "\n" + rest
}
