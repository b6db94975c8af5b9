// internal/theme/theme.go
package theme

import (
	"strings"
	"sync"

	"github.com/bethropolis/side/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the UI.
const (
	StyleDefault           = "Default"
	StyleLineNumber        = "LineNumber"
	StyleLineNumberActive  = "LineNumber.active"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.modified"
	StyleStatusBarMessage  = "StatusBar.message"
	StyleStatusBarLanguage = "StatusBar.language"
)

// Theme maps UI style names to tcell styles and turns highlight colors into
// styles drawn on the theme's background.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style

	mu    sync.Mutex
	spans map[string]tcell.Style
}

// GetStyle returns the named style, falling back to its base name (the part
// before the first dot) and then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// SpanStyle returns the style for a highlight span color such as "#569CD6".
// Unparsable colors render in the default style. Results are cached.
func (t *Theme) SpanStyle(color string) tcell.Style {
	t.mu.Lock()
	defer t.mu.Unlock()

	if style, ok := t.spans[color]; ok {
		return style
	}
	if t.spans == nil {
		t.spans = make(map[string]tcell.Style)
	}

	style := t.GetStyle(StyleDefault)
	if c, err := parseColorString(color); err == nil {
		style = style.Foreground(c)
	} else {
		logger.DebugTagf("theme", "span color %q: %v", color, err)
	}
	t.spans[color] = style
	return style
}

// SideDark is the built-in theme.
var SideDark = newSideDark()

func newSideDark() *Theme {
	background := tcell.NewHexColor(0x1e1e1e)
	bar := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xd4d4d4)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	cyan := tcell.NewHexColor(0x56b6c2)

	base := tcell.StyleDefault.Background(background).Foreground(foreground)
	barStyle := tcell.StyleDefault.Background(bar).Foreground(foreground)

	return &Theme{
		Name:   "Side Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleLineNumber:        base.Foreground(muted),
			StyleLineNumberActive:  base.Foreground(foreground).Bold(true),
			StyleStatusBar:         barStyle,
			StyleStatusBarModified: barStyle.Foreground(yellow),
			StyleStatusBarMessage:  barStyle.Bold(true),
			StyleStatusBarLanguage: barStyle.Foreground(cyan),
		},
	}
}
