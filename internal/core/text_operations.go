package core

import (
	"strings"

	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/types"
)

// InsertChar inserts ch at the cursor and advances the cursor by one rune.
// A cursor left below the last line, as after an external reset, first gets
// a fresh empty line appended to write into.
func (e *Editor) InsertChar(ch rune) {
	if e.insertRune(ch) {
		e.ScrollToCursor()
		e.markModified()
	}
}

// InsertText inserts each rune of s in order, exactly as repeated InsertChar
// calls would. A '\n' in s is stored as a literal rune; callers that want a
// line break call Newline.
func (e *Editor) InsertText(s string) {
	changed := false
	for _, r := range s {
		if e.insertRune(r) {
			changed = true
		}
	}
	if changed {
		e.ScrollToCursor()
		e.markModified()
	}
}

// InsertTab inserts TabWidth spaces.
func (e *Editor) InsertTab() {
	width := e.TabWidth
	if width <= 0 {
		width = 1
	}
	e.InsertText(strings.Repeat(" ", width))
}

func (e *Editor) insertRune(r rune) bool {
	if e.Cursor.Line >= e.buffer.LineCount() {
		e.buffer.AppendLine()
		e.Cursor = types.Position{Line: e.buffer.LineCount() - 1}
	}
	e.clampCursor()

	if err := e.buffer.InsertRune(e.Cursor, r); err != nil {
		logger.Warnf("Editor: insert at %+v failed: %v", e.Cursor, err)
		return false
	}
	e.Cursor.Col++
	return true
}

// Backspace deletes the rune before the cursor. At the start of a line it
// merges the line into the previous one, leaving the cursor at the join.
// At the very start of the document it does nothing.
func (e *Editor) Backspace() {
	e.clampCursor()

	switch {
	case e.Cursor.Col > 0:
		if err := e.buffer.DeleteRuneBefore(e.Cursor); err != nil {
			logger.Warnf("Editor: backspace at %+v failed: %v", e.Cursor, err)
			return
		}
		e.Cursor.Col--
	case e.Cursor.Line > 0:
		prevLen, err := e.buffer.JoinWithPrevious(e.Cursor.Line)
		if err != nil {
			logger.Warnf("Editor: joining line %d failed: %v", e.Cursor.Line, err)
			return
		}
		e.Cursor = types.Position{Line: e.Cursor.Line - 1, Col: prevLen}
	default:
		return
	}

	e.ScrollToCursor()
	e.markModified()
}

// Newline splits the current line at the cursor and moves the cursor to the
// start of the new line.
func (e *Editor) Newline() {
	e.clampCursor()

	if err := e.buffer.SplitLine(e.Cursor); err != nil {
		logger.Warnf("Editor: newline at %+v failed: %v", e.Cursor, err)
		return
	}
	e.Cursor = types.Position{Line: e.Cursor.Line + 1}

	e.ScrollToCursor()
	e.markModified()
}
