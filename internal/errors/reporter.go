package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"fieldpath/cst"
)

// Reporter formats parse diagnostics for a console, Rust-style: a colored
// header with the code, the offending source line, and a caret underline.
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

// Format renders one diagnostic:
//
//	error[E0204]: coalesce group requires at least two alternatives
//	   --> query.fp:1:3
//	    │
//	  1 │ x.(a)
//	    │   ^^^
func (r *Reporter) Format(err cst.SyntaxError) string {
	var b strings.Builder

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", red("error"), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", red("error"), err.Message)
	}

	lineNumberWidth := len(fmt.Sprintf("%d", err.Position.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	lineContent := ""
	if err.Position.Line-1 >= 0 && err.Position.Line-1 < len(r.lines) {
		lineContent = r.lines[err.Position.Line-1]
	}
	fmt.Fprintf(&b, "%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
		dim("│"),
		lineContent)

	// Caret underline, clipped to the line the error starts on
	length := err.Length
	if remain := len(lineContent) - (err.Position.Column - 1); length > remain {
		length = remain
	}
	if length < 1 {
		length = 1
	}
	marker := strings.Repeat(" ", err.Position.Column-1) + strings.Repeat("^", length)
	fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), bold(red(marker)))

	return b.String()
}

// FormatAll renders every diagnostic in order.
func (r *Reporter) FormatAll(errs []cst.SyntaxError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(r.Format(err))
		b.WriteString("\n")
	}
	return b.String()
}
