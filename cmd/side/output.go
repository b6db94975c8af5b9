package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// setColor enables or disables every fatih/color helper at once.
func setColor(on bool) {
	color.NoColor = !on
}

func printHeading(w io.Writer, format string, args ...interface{}) {
	headingColor.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}
