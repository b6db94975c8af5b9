package viewport

import (
	"math"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/side/internal/types"
)

// Metrics describes the pixel geometry of the text pane.
type Metrics struct {
	LineHeight float64
	CharWidth  float64
	PadX       float64
	PadY       float64
	// ClickBias shifts clicks right so a click just left of a glyph lands on it.
	ClickBias float64
}

// DefaultMetrics matches a 14px monospace font with 1.4 line spacing.
func DefaultMetrics() Metrics {
	const fontPx = 14.0
	return Metrics{
		LineHeight: math.Round(fontPx * 1.4),
		CharWidth:  fontPx * 0.6,
		PadX:       10,
		PadY:       8,
		ClickBias:  2,
	}
}

// HitTest maps a point in pane coordinates to a text position. The line is
// clamped to the document and the column to the length of that line.
func (m Metrics) HitTest(x, y float64, lines []string) types.Position {
	if len(lines) == 0 {
		return types.Position{}
	}

	line := 0
	if contentY := y - m.PadY; contentY > 0 && m.LineHeight > 0 {
		line = floorInt(contentY / m.LineHeight)
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}

	col := 0
	if contentX := x - m.PadX + m.ClickBias; contentX > 0 && m.CharWidth > 0 {
		col = floorInt(contentX / m.CharWidth)
	}
	if n := utf8.RuneCountInString(lines[line]); col > n {
		col = n
	}
	return types.Position{Line: line, Col: col}
}

// CellWidth is the number of terminal cells a grapheme cluster of the given
// display width occupies. Zero-width clusters such as tabs and other control
// characters still take one cell so every rune column has a cell.
func CellWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

// CellColumn maps a terminal cell offset within line to a rune column.
// Wide graphemes occupy more than one cell; a cell inside one maps to its
// first rune. Offsets past the end clamp to the line length.
func CellColumn(line string, cellX int) int {
	if cellX <= 0 {
		return 0
	}
	col, width := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w = CellWidth(w)
		if width+w > cellX {
			return col
		}
		width += w
		col += utf8.RuneCountInString(cluster)
	}
	return col
}

// ColumnCell is the inverse of CellColumn: the cell offset at which rune
// column col starts.
func ColumnCell(line string, col int) int {
	if col <= 0 {
		return 0
	}
	runes, width := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 && runes < col {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		width += CellWidth(w)
		runes += utf8.RuneCountInString(cluster)
	}
	return width
}
