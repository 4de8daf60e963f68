package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"fieldpath/internal/errors"
	"fieldpath/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: fieldpath <file.fp>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	tree := parser.Parse(string(source))

	reporter := errors.NewReporter(path, string(source))
	for _, parseErr := range tree.Errors() {
		fmt.Print(reporter.Format(parseErr))
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	// The tree is always printed: erroneous statements show up as ERROR
	// nodes without disturbing their siblings.
	fmt.Println(tree.String())

	if len(tree.Errors()) == 0 {
		color.Green("Successfully parsed %s in %s", path, formattedDuration)
	} else {
		color.Red("Parsed %s with %d error(s) in %s", path, len(tree.Errors()), formattedDuration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
