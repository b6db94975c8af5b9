// internal/core/editor.go
package core

import (
	"github.com/bethropolis/side/internal/buffer"
	"github.com/bethropolis/side/internal/config"
	"github.com/bethropolis/side/internal/event"
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/syntax"
	"github.com/bethropolis/side/internal/types"
)

// Editor owns one document and its cursor. All text mutation goes through
// its methods, which keep the cursor inside the document after every call.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible display cell - horizontal scroll
	viewWidth  int
	viewHeight int
	ScrollOff  int // Lines kept visible above/below the cursor
	TabWidth   int // Spaces inserted for a Tab keystroke

	filePath string
	language string
	modified bool

	eventManager *event.Manager
}

// NewEditor creates a new Editor over buf.
func NewEditor(buf buffer.Buffer) *Editor {
	if buf == nil {
		buf = buffer.NewSliceBuffer()
	}
	return &Editor{
		buffer:    buf,
		ScrollOff: config.DefaultScrollOff,
		TabWidth:  config.DefaultTabWidth,
		language:  syntax.PlainLanguage,
	}
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// GetViewport returns the top line and left cell of the view.
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// FilePath returns the path the document was loaded from or saved to.
func (e *Editor) FilePath() string {
	return e.filePath
}

// SetFilePath records the document's path without touching its content.
func (e *Editor) SetFilePath(path string) {
	e.filePath = path
}

// Language returns the language used to highlight the document.
func (e *Editor) Language() string {
	return e.language
}

// SetLanguage changes the document's language.
func (e *Editor) SetLanguage(name string) {
	if name == "" {
		name = syntax.PlainLanguage
	}
	if name == e.language {
		return
	}
	e.language = name
	logger.DebugTagf("core", "language set to %s", name)
	e.dispatch(event.TypeLanguageChanged, event.LanguageChangedData{Language: name})
}

// IsModified reports whether the text changed since the last load or save.
func (e *Editor) IsModified() bool {
	return e.modified
}

// MarkSaved clears the modified flag after a successful save to path.
func (e *Editor) MarkSaved(path string) {
	if path != "" {
		e.filePath = path
	}
	e.modified = false
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.filePath})
}

// LoadText replaces the document with text loaded from path. The cursor and
// view return to the top and the document is considered unmodified.
func (e *Editor) LoadText(path, text string) {
	e.buffer.SetText(text)
	e.filePath = path
	e.Cursor = types.Position{}
	e.ViewportY, e.ViewportX = 0, 0
	e.modified = false
	logger.Debugf("Editor: loaded %q (%d lines)", path, e.buffer.LineCount())
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
}

// Reset replaces the document with a new, empty, untitled one.
func (e *Editor) Reset() {
	e.LoadText("", "")
	e.SetLanguage(syntax.PlainLanguage)
}

// Text returns the whole document joined with the line separator.
func (e *Editor) Text() string {
	return e.buffer.Text()
}

// Lines returns a copy of the lines in [start, end), clamped to the document.
func (e *Editor) Lines(start, end int) []string {
	if start < 0 {
		start = 0
	}
	if n := e.buffer.LineCount(); end > n {
		end = n
	}
	if start >= end {
		return nil
	}
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line, err := e.buffer.Line(i)
		if err != nil {
			logger.Debugf("Editor.Lines: %v", err)
			line = ""
		}
		out = append(out, line)
	}
	return out
}

// SetViewSize updates the cached view dimensions. Called before every draw;
// the view only follows the cursor when the size actually changed.
func (e *Editor) SetViewSize(width, height int) {
	if height < 0 {
		height = 0
	}
	if width == e.viewWidth && height == e.viewHeight {
		return
	}
	e.viewWidth = width
	e.viewHeight = height
	e.ScrollToCursor()
}

// ViewSize returns the cached view dimensions.
func (e *Editor) ViewSize() (int, int) {
	return e.viewWidth, e.viewHeight
}

func (e *Editor) markModified() {
	e.modified = true
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Cursor:    e.Cursor,
		LineCount: e.buffer.LineCount(),
	})
}

func (e *Editor) cursorMoved() {
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.Cursor})
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}
