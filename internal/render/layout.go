package render

import (
	"strconv"

	"github.com/bethropolis/side/internal/config"
)

// Options controls optional parts of the text pane.
type Options struct {
	LineNumbers bool
}

// Layout is the geometry of the text pane for one frame.
type Layout struct {
	Width      int
	Height     int
	ViewHeight int // Rows available for text, above the status bar
	Gutter     int // Columns taken by line numbers, including padding
	Digits     int
}

// TextWidth is the number of columns available for text.
func (l Layout) TextWidth() int {
	return l.Width - l.Gutter
}

// ComputeLayout sizes the pane for a screen and document.
func ComputeLayout(width, height, lineCount int, opts Options) Layout {
	l := Layout{Width: width, Height: height, ViewHeight: height - config.StatusBarHeight}
	if l.ViewHeight < 0 {
		l.ViewHeight = 0
	}
	if !opts.LineNumbers {
		return l
	}
	if lineCount < 1 {
		lineCount = 1
	}
	l.Digits = len(strconv.Itoa(lineCount))
	l.Gutter = l.Digits + 1 // One column of padding
	if l.Gutter >= width {
		l.Gutter, l.Digits = 0, 0
	}
	return l
}
