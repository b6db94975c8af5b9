package core

import (
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/types"
	"github.com/bethropolis/side/internal/viewport"
)

// clampCursor pulls the cursor back inside the document. It is the recovery
// path for a cursor left stale by an external change.
func (e *Editor) clampCursor() {
	lineCount := e.buffer.LineCount()
	if e.Cursor.Line >= lineCount {
		e.Cursor.Line = lineCount - 1
	}
	if e.Cursor.Line < 0 {
		e.Cursor.Line = 0
	}
	if n := e.buffer.LineLen(e.Cursor.Line); e.Cursor.Col > n {
		e.Cursor.Col = n
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

// moveTo sets the cursor and reports the move if it changed anything.
func (e *Editor) moveTo(pos types.Position) {
	old := e.Cursor
	e.Cursor = pos
	e.clampCursor()
	e.ScrollToCursor()
	if e.Cursor != old {
		e.cursorMoved()
	}
}

// SetCursor moves the cursor to pos, clamped to the document.
func (e *Editor) SetCursor(pos types.Position) {
	e.moveTo(pos)
}

// MoveLeft moves one rune left, wrapping to the end of the previous line.
func (e *Editor) MoveLeft() {
	e.clampCursor()
	pos := e.Cursor
	if pos.Col > 0 {
		pos.Col--
	} else if pos.Line > 0 {
		pos.Line--
		pos.Col = e.buffer.LineLen(pos.Line)
	}
	e.moveTo(pos)
}

// MoveRight moves one rune right, wrapping to the start of the next line.
func (e *Editor) MoveRight() {
	e.clampCursor()
	pos := e.Cursor
	if pos.Col < e.buffer.LineLen(pos.Line) {
		pos.Col++
	} else if pos.Line+1 < e.buffer.LineCount() {
		pos.Line++
		pos.Col = 0
	}
	e.moveTo(pos)
}

// MoveUp moves one line up. The column is clamped to the new line's length
// and is not remembered across short lines.
func (e *Editor) MoveUp() {
	e.clampCursor()
	e.moveTo(types.Position{Line: e.Cursor.Line - 1, Col: e.Cursor.Col})
}

// MoveDown moves one line down, clamping the column like MoveUp.
func (e *Editor) MoveDown() {
	e.clampCursor()
	e.moveTo(types.Position{Line: e.Cursor.Line + 1, Col: e.Cursor.Col})
}

// MoveHome moves the cursor to the beginning of the current line.
func (e *Editor) MoveHome() {
	e.clampCursor()
	e.moveTo(types.Position{Line: e.Cursor.Line})
}

// MoveEnd moves the cursor past the last rune of the current line.
func (e *Editor) MoveEnd() {
	e.clampCursor()
	e.moveTo(types.Position{Line: e.Cursor.Line, Col: e.buffer.LineLen(e.Cursor.Line)})
}

// PageMove moves the cursor and viewport up or down by one page height.
// deltaPages is typically +1 (PageDown) or -1 (PageUp).
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	e.clampCursor()
	target := types.Position{Line: e.Cursor.Line + e.viewHeight*deltaPages, Col: e.Cursor.Col}

	e.ViewportY += e.viewHeight * deltaPages
	e.clampViewport()
	e.moveTo(target)
}

// ScrollBy moves the viewport by delta lines without moving the cursor.
func (e *Editor) ScrollBy(delta int) {
	e.ViewportY += delta
	e.clampViewport()
}

func (e *Editor) clampViewport() {
	maxY := e.buffer.LineCount() - 1
	if e.ViewportY > maxY {
		e.ViewportY = maxY
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}

// ScrollToCursor adjusts the viewport so the cursor stays ScrollOff lines
// away from the top and bottom edges and inside the view horizontally.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if e.Cursor.Line < e.ViewportY+scrollOff {
		e.ViewportY = e.Cursor.Line - scrollOff
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + scrollOff
	}

	line, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		logger.Debugf("ScrollToCursor: %v", err)
	}
	cell := viewport.ColumnCell(line, e.Cursor.Col)
	if cell < e.ViewportX {
		e.ViewportX = cell
	} else if cell >= e.ViewportX+e.viewWidth {
		e.ViewportX = cell - e.viewWidth + 1
	}

	e.clampViewport()
}
