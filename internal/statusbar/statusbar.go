// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/side/internal/theme"
	"github.com/bethropolis/side/internal/types"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// StatusBar is the one-line summary at the bottom of the screen: file name,
// modified flag, language and cursor position, or a temporary message.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	cursorPos  types.Position
	isModified bool
	language   string
	mode       string

	prompting   bool
	promptLabel string
	promptText  string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &StatusBar{config: config}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetLanguage updates the language shown.
func (sb *StatusBar) SetLanguage(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.language = name
}

// SetMode names the input mode shown before the language. An empty name
// hides it.
func (sb *StatusBar) SetMode(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = name
}

// SetPrompt shows label followed by the text being typed. The prompt stays
// until ClearPrompt and takes precedence over messages.
func (sb *StatusBar) SetPrompt(label, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompting = true
	sb.promptLabel = label
	sb.promptText = text
}

// ClearPrompt removes the prompt.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompting = false
	sb.promptLabel = ""
	sb.promptText = ""
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.config.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// HasMessage reports whether a temporary message is still showing.
func (sb *StatusBar) HasMessage() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.messageActive()
}

func (sb *StatusBar) messageActive() bool {
	return !sb.tempMessageTime.IsZero() && sb.config.Now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
}

// Segments is the rendered content of the bar for a given width.
type Segments struct {
	Left     string
	Right    string
	Message  bool // Left holds a temporary message
	Modified bool
	Prompt   bool // Left holds a prompt; Right is empty
	// Cursor is the cell after the prompt text, or -1 without a prompt.
	Cursor int
}

// Render lays out the bar for width cells. The left part is truncated so
// the right part (language and position) always fits when possible.
func (sb *StatusBar) Render(width int) Segments {
	sb.mu.Lock()
	active := sb.messageActive()
	if !active && !sb.tempMessageTime.IsZero() {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	seg := Segments{Cursor: -1}
	if sb.prompting {
		label, text := sb.promptLabel, sb.promptText
		sb.mu.Unlock()
		return renderPrompt(seg, label, text, width)
	}

	right := fmt.Sprintf(" %s  Ln %d, Col %d ", sb.language, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if sb.mode != "" {
		right = " " + sb.mode + " " + right
	}
	if active {
		seg.Left = sb.tempMessage
		seg.Message = true
	} else {
		name := sb.filePath
		if name == "" {
			name = "[No Name]"
		} else {
			name = filepath.Base(name)
		}
		if sb.isModified {
			name += " [Modified]"
			seg.Modified = true
		}
		seg.Left = name
	}
	sb.mu.Unlock()

	seg.Left = strings.ReplaceAll(seg.Left, "\n", " ")
	rightWidth := runewidth.StringWidth(right)
	if rightWidth+1 > width {
		seg.Right = ""
		seg.Left = runewidth.Truncate(" "+seg.Left, width, "…")
		return seg
	}
	seg.Right = right
	seg.Left = runewidth.Truncate(" "+seg.Left, width-rightWidth, "…")
	return seg
}

// renderPrompt keeps the end of the typed text visible, cutting from the
// left when it does not fit with a cell left over for the cursor.
func renderPrompt(seg Segments, label, text string, width int) Segments {
	seg.Prompt = true
	label = strings.ReplaceAll(label, "\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	avail := width - 2 // Leading space and cursor cell
	if avail <= 0 {
		return seg
	}
	labelWidth := runewidth.StringWidth(label)
	if labelWidth >= avail {
		seg.Left = runewidth.Truncate(" "+label, width, "…")
		return seg
	}
	if over := labelWidth + runewidth.StringWidth(text) - avail; over > 0 {
		text = runewidth.TruncateLeft(text, over+1, "…")
	}
	seg.Left = " " + label + text
	seg.Cursor = runewidth.StringWidth(seg.Left)
	return seg
}

// Draw renders the status bar on the last row of the screen. It returns the
// prompt cursor column, or -1 when no prompt is showing.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) int {
	if height <= 0 || width <= 0 {
		return -1
	}
	y := height - 1
	seg := sb.Render(width)

	base := th.GetStyle(theme.StyleStatusBar)
	leftStyle := base
	switch {
	case seg.Prompt, seg.Message:
		leftStyle = th.GetStyle(theme.StyleStatusBarMessage)
	case seg.Modified:
		leftStyle = th.GetStyle(theme.StyleStatusBarModified)
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}
	drawText(screen, 0, y, width, seg.Left, leftStyle)
	if seg.Right != "" {
		x := width - runewidth.StringWidth(seg.Right)
		drawText(screen, x, y, width, seg.Right, th.GetStyle(theme.StyleStatusBarLanguage))
	}
	return seg.Cursor
}

// drawText writes text from column x, one grapheme cluster per cell run.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
