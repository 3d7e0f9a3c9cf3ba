package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cslex/internal/lexer"
)

// Reporter renders scan errors with source context, in the style of
// modern compiler diagnostics.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders one scan error with its source line and a caret marker.
func (r *Reporter) Format(err *lexer.ScanError) string {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var lineContent string
	if err.Position.Line-1 >= 0 && err.Position.Line-1 < len(r.lines) {
		lineContent = r.lines[err.Position.Line-1]
	}

	// Columns are zero-based, so the marker indent is the column itself.
	marker := strings.Repeat(" ", max(0, err.Position.Column)) +
		strings.Repeat("^", max(1, err.Length))

	lineNumberWidth := len(fmt.Sprintf("%d", err.Position.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", red("error"), CodeFor(err.Kind), err.Message))
	b.WriteString(fmt.Sprintf("%s%s %s:%d:%d\n",
		indent, dim("┌─"), r.filename, err.Position.Line, err.Position.Column))
	b.WriteString(fmt.Sprintf("%s%s\n", indent, dim("│")))
	b.WriteString(fmt.Sprintf("%*d%s%s\n", lineNumberWidth, err.Position.Line, dim("│"), lineContent))
	b.WriteString(fmt.Sprintf("%s%s%s\n", indent, dim("│"), bold(marker)))
	if err.TokenCount > 0 {
		b.WriteString(fmt.Sprintf("%s%s %d tokens scanned before the failure\n",
			indent, dim("="), err.TokenCount))
	}
	b.WriteString("\n")
	return b.String()
}
