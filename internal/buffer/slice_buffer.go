// internal/buffer/slice_buffer.go
package buffer

import (
	"fmt"

	"github.com/bethropolis/side/internal/types"
)

// SliceBuffer keeps the document as one rune slice per line.
type SliceBuffer struct {
	lines [][]rune
}

// NewSliceBuffer creates a buffer holding a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]rune{{}},
	}
}

// SetText replaces the whole content, splitting on LineSeparator.
func (sb *SliceBuffer) SetText(text string) {
	split := SplitLines(text)
	lines := make([][]rune, len(split))
	for i, line := range split {
		lines[i] = []rune(line)
	}
	sb.lines = lines
}

// Text joins every line with LineSeparator.
func (sb *SliceBuffer) Text() string {
	return JoinLines(sb.strings())
}

func (sb *SliceBuffer) strings() []string {
	out := make([]string, len(sb.lines))
	for i, line := range sb.lines {
		out[i] = string(line)
	}
	return out
}

// LineCount returns the number of lines (always >= 1).
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the text of the line at index.
func (sb *SliceBuffer) Line(index int) (string, error) {
	if index < 0 || index >= len(sb.lines) {
		return "", fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return string(sb.lines[index]), nil
}

// LineLen returns the rune length of a line, or 0 for an invalid index.
func (sb *SliceBuffer) LineLen(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return len(sb.lines[index])
}

// AppendLine adds an empty line at the end of the document.
func (sb *SliceBuffer) AppendLine() {
	sb.lines = append(sb.lines, []rune{})
}

// --- Buffer Modification Methods ---

// InsertRune inserts r before the rune at pos.Col.
func (sb *SliceBuffer) InsertRune(pos types.Position, r rune) error {
	pos, err := sb.validatePosition(pos)
	if err != nil {
		return fmt.Errorf("invalid insert position: %w", err)
	}

	line := sb.lines[pos.Line]
	line = append(line, 0)
	copy(line[pos.Col+1:], line[pos.Col:])
	line[pos.Col] = r
	sb.lines[pos.Line] = line
	return nil
}

// DeleteRuneBefore removes the rune at pos.Col-1. pos.Col must be > 0.
func (sb *SliceBuffer) DeleteRuneBefore(pos types.Position) error {
	pos, err := sb.validatePosition(pos)
	if err != nil {
		return fmt.Errorf("invalid delete position: %w", err)
	}
	if pos.Col == 0 {
		return fmt.Errorf("nothing before column 0 on line %d", pos.Line)
	}

	line := sb.lines[pos.Line]
	sb.lines[pos.Line] = append(line[:pos.Col-1], line[pos.Col:]...)
	return nil
}

// SplitLine cuts the line at pos.Col; the tail becomes a new line right after it.
func (sb *SliceBuffer) SplitLine(pos types.Position) error {
	pos, err := sb.validatePosition(pos)
	if err != nil {
		return fmt.Errorf("invalid split position: %w", err)
	}

	line := sb.lines[pos.Line]
	tail := make([]rune, len(line)-pos.Col)
	copy(tail, line[pos.Col:])
	sb.lines[pos.Line] = line[:pos.Col:pos.Col] // Cap the head so appends never overwrite tail storage

	sb.lines = append(sb.lines, nil)
	copy(sb.lines[pos.Line+2:], sb.lines[pos.Line+1:])
	sb.lines[pos.Line+1] = tail
	return nil
}

// JoinWithPrevious appends line to the end of line-1 and removes it.
// It returns the rune length the previous line had before the merge.
func (sb *SliceBuffer) JoinWithPrevious(line int) (int, error) {
	if line <= 0 || line >= len(sb.lines) {
		return 0, fmt.Errorf("cannot join line %d with its predecessor (0-%d)", line, len(sb.lines)-1)
	}

	prev := sb.lines[line-1]
	prevLen := len(prev)
	sb.lines[line-1] = append(prev, sb.lines[line]...)
	sb.lines = append(sb.lines[:line], sb.lines[line+1:]...)
	return prevLen, nil
}

// validatePosition clamps the column to the line length and rejects bad lines.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, error) {
	if pos.Line < 0 || pos.Line >= len(sb.lines) {
		return pos, fmt.Errorf("line index %d out of bounds (0-%d)", pos.Line, len(sb.lines)-1)
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := len(sb.lines[pos.Line]); pos.Col > n {
		pos.Col = n
	}
	return pos, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
