// internal/types/position.go
package types

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column within the line, counted in runes (code points).
// Every mutation, cursor move, highlight grid and click mapping uses the same unit.
type Position struct {
	Line int
	Col  int // Rune index
}
