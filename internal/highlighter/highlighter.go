// Package highlighter turns lines of text into colored spans using the
// regex rule sets managed by package syntax.
package highlighter

import (
	"github.com/bethropolis/side/internal/syntax"
	"github.com/bethropolis/side/internal/types"
)

// Highlighter highlights lines for a named language. It holds no per-call
// state and is safe for concurrent use.
type Highlighter struct {
	cache *syntax.Cache
}

// NewHighlighter creates a highlighter backed by cache.
func NewHighlighter(cache *syntax.Cache) *Highlighter {
	return &Highlighter{cache: cache}
}

// Definition returns the compiled rule set used for language.
func (h *Highlighter) Definition(language string) *syntax.Definition {
	if h.cache == nil {
		return syntax.Fallback()
	}
	return h.cache.Load(language)
}

// HighlightLine highlights a single line.
func (h *Highlighter) HighlightLine(line, language string) []types.HighlightSpan {
	return Apply(h.Definition(language), line)
}

// HighlightLines highlights each line independently; the result is
// index-aligned with lines.
func (h *Highlighter) HighlightLines(lines []string, language string) [][]types.HighlightSpan {
	def := h.Definition(language)
	out := make([][]types.HighlightSpan, len(lines))
	for i, line := range lines {
		out[i] = Apply(def, line)
	}
	return out
}

// Apply colors line with def. Rules are tried in the definition's priority
// order and the first rule to cover a rune owns it; uncovered runes get the
// default color. Adjacent runes of equal color are merged, so the spans
// concatenate back to line exactly and no two neighbours share a color.
func Apply(def *syntax.Definition, line string) []types.HighlightSpan {
	if def == nil {
		def = syntax.Fallback()
	}
	if line == "" || len(def.Rules) == 0 {
		return []types.HighlightSpan{{Text: line, Color: def.DefaultColor}}
	}

	idx := indexRunes(line)
	colors := make([]string, idx.count())

	for _, rule := range def.Rules {
		for _, m := range rule.Pattern.FindAllStringIndex(line, -1) {
			start, end := idx.runeAt[m[0]], idx.runeAt[m[1]]
			for i := start; i < end; i++ {
				if colors[i] == "" {
					colors[i] = rule.Color
				}
			}
		}
	}

	spans := make([]types.HighlightSpan, 0, 4)
	runStart := 0
	runColor := colorOr(colors[0], def.DefaultColor)
	for i := 1; i < len(colors); i++ {
		c := colorOr(colors[i], def.DefaultColor)
		if c == runColor {
			continue
		}
		spans = append(spans, types.HighlightSpan{
			Text:  line[idx.starts[runStart]:idx.starts[i]],
			Color: runColor,
		})
		runStart, runColor = i, c
	}
	spans = append(spans, types.HighlightSpan{
		Text:  line[idx.starts[runStart]:],
		Color: runColor,
	})
	return spans
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}
