// Package viewport computes which lines of a document need rendering for a
// scroll position, and maps pointer coordinates back to text positions.
package viewport

import (
	"math"

	"fortio.org/safecast"
)

// Overscan is the number of lines rendered beyond the visible area.
const Overscan = 20

// Window is the half-open line range [Start, End) to render, plus the
// spacer heights that keep the total scroll height stable.
type Window struct {
	Start           int
	End             int
	LeadingPadding  float64
	TrailingPadding float64
}

// Len returns the number of lines in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// VisibleRange returns the window of lines to render. It has no side effects.
func VisibleRange(scrollTop, viewportHeight, lineHeight float64, totalLines int) Window {
	if totalLines <= 0 || lineHeight <= 0 || math.IsNaN(lineHeight) || math.IsInf(lineHeight, 0) {
		return Window{}
	}

	start := floorInt(scrollTop / lineHeight)
	if start < 0 {
		start = 0
	}
	if start > totalLines {
		start = totalLines
	}

	fit := ceilInt(viewportHeight / lineHeight)
	if fit < 0 {
		fit = 0
	}
	end := start + fit + Overscan
	if end > totalLines || end < start {
		end = totalLines
	}

	return Window{
		Start:           start,
		End:             end,
		LeadingPadding:  float64(start) * lineHeight,
		TrailingPadding: float64(totalLines-end) * lineHeight,
	}
}

// floorInt converts floor(v) to int, saturating when it is out of range.
func floorInt(v float64) int {
	return toInt(math.Floor(v))
}

func ceilInt(v float64) int {
	return toInt(math.Ceil(v))
}

func toInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	n, err := safecast.Convert[int](v)
	if err != nil {
		if v < 0 {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}
