/*
File   : spylang/diagnostic/diagnostic.go

Package diagnostic renders the caret-underlined source excerpt shown
beneath a reported error — display formatting kept apart from
langerr.Error itself, which only carries the data (positions, kind,
message) a renderer needs. An external collaborator to the interpreter
core: batch/REPL output formatting, not language semantics.
*/
package diagnostic

import (
	"strings"

	"spylang/position"
)

// Arrow renders the source line containing start with a caret line
// underneath marking the columns from start to end. Only that one line
// is shown; a span reaching past its end is clipped to it.
func Arrow(start, end position.Position) string {
	text := start.FileText
	if text == "" {
		return ""
	}

	lineStart := strings.LastIndex(text[:start.Index], "\n") + 1
	lineEnd := strings.Index(text[start.Index:], "\n")
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += start.Index
	}

	line := text[lineStart:lineEnd]

	col := start.Index - lineStart
	width := end.Index - start.Index
	if width < 1 {
		width = 1
	}
	if col+width > len(line) {
		width = len(line) - col
	}
	if col < 0 {
		col = 0
	}
	if width < 0 {
		width = 0
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", col))
	b.WriteString(strings.Repeat("^", max(width, 1)))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
