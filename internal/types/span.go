package types

// HighlightSpan is one contiguous run of a line drawn in a single color.
// The spans returned for a line are ordered left to right and their Text
// fields concatenate back to the original line.
type HighlightSpan struct {
	Text  string
	Color string // Color string as written in the rule set, e.g. "#569CD6"
}
