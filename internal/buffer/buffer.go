// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/side/internal/types"

// Buffer defines the line-level operations every keystroke reduces to.
// Columns are rune indices (see types.Position).
type Buffer interface {
	Line(index int) (string, error)
	LineLen(index int) int
	LineCount() int
	InsertRune(pos types.Position, r rune) error
	DeleteRuneBefore(pos types.Position) error
	SplitLine(pos types.Position) error
	JoinWithPrevious(line int) (int, error)
	AppendLine()
	SetText(text string)
	Text() string
}
