// Package render draws the editor's text pane onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/side/internal/core"
	"github.com/bethropolis/side/internal/highlighter"
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/theme"
	"github.com/bethropolis/side/internal/tui"
	"github.com/bethropolis/side/internal/types"
	"github.com/bethropolis/side/internal/viewport"
)

// Buffer draws the visible part of the document with line numbers and
// syntax colors, and returns the window of lines that was highlighted.
func Buffer(t *tui.TUI, ed *core.Editor, hl *highlighter.Highlighter, th *theme.Theme, opts Options) viewport.Window {
	screen := t.GetScreen()
	width, height := t.Size()
	lineCount := ed.GetBuffer().LineCount()
	layout := ComputeLayout(width, height, lineCount, opts)
	if layout.ViewHeight <= 0 || width <= 0 {
		return viewport.Window{}
	}

	viewY, viewX := ed.GetViewport()
	win := viewport.VisibleRange(float64(viewY), float64(layout.ViewHeight), 1, lineCount)
	lines := ed.Lines(win.Start, win.End)
	spans := hl.HighlightLines(lines, ed.Language())
	logger.DebugTagf("draw", "window %d-%d of %d lines, language %s", win.Start, win.End, lineCount, ed.Language())

	defaultStyle := th.GetStyle(theme.StyleDefault)
	cursorLine := ed.GetCursor().Line

	for screenY := 0; screenY < layout.ViewHeight; screenY++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		lineIdx := viewY + screenY
		if lineIdx < win.Start || lineIdx >= win.End {
			continue
		}

		if layout.Gutter > 0 {
			style := th.GetStyle(theme.StyleLineNumber)
			if lineIdx == cursorLine {
				style = th.GetStyle(theme.StyleLineNumberActive)
			}
			for i, r := range fmt.Sprintf("%*d", layout.Digits, lineIdx+1) {
				screen.SetContent(i, screenY, r, nil, style)
			}
		}

		drawSpans(screen, screenY, layout, viewX, spans[lineIdx-win.Start], th)
	}
	return win
}

// drawSpans draws one line's spans, skipping cells scrolled off to the left.
func drawSpans(screen tcell.Screen, y int, layout Layout, viewX int, spans []types.HighlightSpan, th *theme.Theme) {
	cell := 0
	right := viewX + layout.TextWidth()
	for _, span := range spans {
		style := th.SpanStyle(span.Color)
		state := -1
		rest := span.Text
		for len(rest) > 0 {
			var cluster string
			var w int
			cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
			w = viewport.CellWidth(w)

			if cell >= right {
				return
			}
			if cell >= viewX && cell+w <= right {
				x := layout.Gutter + cell - viewX
				runes := []rune(cluster)
				if runes[0] < ' ' || runes[0] == 0x7f {
					screen.SetContent(x, y, ' ', nil, style)
				} else {
					screen.SetContent(x, y, runes[0], runes[1:], style)
				}
			}
			cell += w
		}
	}
}

// Cursor positions the terminal cursor, hiding it when it is off screen.
func Cursor(t *tui.TUI, ed *core.Editor, opts Options) {
	screen := t.GetScreen()
	width, height := t.Size()
	layout := ComputeLayout(width, height, ed.GetBuffer().LineCount(), opts)

	cursor := ed.GetCursor()
	viewY, viewX := ed.GetViewport()
	line, err := ed.GetBuffer().Line(cursor.Line)
	if err != nil {
		logger.Debugf("Cursor: %v", err)
	}

	screenX := layout.Gutter + viewport.ColumnCell(line, cursor.Col) - viewX
	screenY := cursor.Line - viewY
	if screenX < layout.Gutter || screenX >= width || screenY < 0 || screenY >= layout.ViewHeight {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(screenX, screenY)
}

// ScreenToPosition maps a screen cell to a document position. It reports
// false for cells outside the text pane.
func ScreenToPosition(ed *core.Editor, x, y, width, height int, opts Options) (types.Position, bool) {
	buf := ed.GetBuffer()
	layout := ComputeLayout(width, height, buf.LineCount(), opts)
	if y < 0 || y >= layout.ViewHeight || x < 0 {
		return types.Position{}, false
	}

	viewY, viewX := ed.GetViewport()
	lineIdx := viewY + y
	if lineIdx >= buf.LineCount() {
		lineIdx = buf.LineCount() - 1
	}
	line, err := buf.Line(lineIdx)
	if err != nil {
		return types.Position{}, false
	}

	cell := x - layout.Gutter + viewX
	if cell < 0 {
		cell = 0
	}
	return types.Position{Line: lineIdx, Col: viewport.CellColumn(line, cell)}, true
}
