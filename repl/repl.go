// Package repl provides an interactive parse-and-print loop for trying out
// fieldpath expressions.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fieldpath/internal/errors"
	"fieldpath/parser"
)

const PROMPT = ">> "

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		tree := parser.Parse(line)

		if errs := tree.Errors(); len(errs) > 0 {
			reporter := errors.NewReporter("repl", line)
			for _, err := range errs {
				fmt.Fprint(out, reporter.Format(err))
			}
			color.New(color.FgRed).Fprintf(out, "%d error(s)\n", len(errs))
		}

		fmt.Fprintf(out, "%s\n", tree.String())
	}
}
