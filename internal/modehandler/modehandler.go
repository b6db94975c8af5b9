// internal/modehandler/modehandler.go
package modehandler

import (
	"time"

	"github.com/bethropolis/side/internal/config"
	"github.com/bethropolis/side/internal/core"
	"github.com/bethropolis/side/internal/input"
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/statusbar"
	"github.com/bethropolis/side/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	// ModeConfirm waits for a repeated key before discarding unsaved
	// changes, or Ctrl+S to save them first.
	ModeConfirm
	// ModePrompt edits a file path in the status bar.
	ModePrompt
)

func (m InputMode) String() string {
	switch m {
	case ModeConfirm:
		return "CONFIRM"
	case ModePrompt:
		return "PROMPT"
	}
	return "NORMAL"
}

// ModeHandler turns input events into editor operations.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	callbacks      Callbacks
	confirmTimeout time.Duration
	now            func() time.Time

	currentMode InputMode
	pending     input.Action
	pendingAt   time.Time
	prompt      prompt
}

// Callbacks are the operations the handler cannot perform on the editor
// alone. Nil callbacks disable the matching action.
type Callbacks struct {
	// Save writes the document to path. then, if not nil, runs once the
	// document is saved and unmodified.
	Save func(path string, then func())
	// Open replaces the document with the file at path.
	Open   func(path string)
	Reload func()
	New    func()
	Quit   func()
	// Clipboard returns the text to paste.
	Clipboard func() (string, error)
	// HitTest maps a screen cell to a document position.
	HitTest func(x, y int) (types.Position, bool)
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	Callbacks      Callbacks
	// ConfirmTimeout bounds how long a pending confirmation stays armed.
	ConfirmTimeout time.Duration
	Now            func() time.Time
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = config.MessageTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		callbacks:      cfg.Callbacks,
		confirmTimeout: cfg.ConfirmTimeout,
		now:            cfg.Now,
		currentMode:    ModeNormal,
	}
}

// GetCurrentMode returns the current input mode. An expired confirmation
// reads as ModeNormal.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	mh.expireConfirm()
	return mh.currentMode
}

func (mh *ModeHandler) expireConfirm() {
	if mh.currentMode == ModeConfirm && mh.now().Sub(mh.pendingAt) > mh.confirmTimeout {
		mh.currentMode = ModeNormal
		mh.pending = input.ActionUnknown
	}
}

// HandleKeyEvent decodes a key press and applies it.
// Returns true if the event requires a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	return mh.HandleAction(mh.inputProcessor.ProcessEvent(ev))
}

// HandleMouseEvent decodes a mouse event and applies it.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	ae := mh.inputProcessor.ProcessMouse(ev)
	if ae.Action == input.ActionUnknown {
		return false
	}
	return mh.HandleAction(ae)
}

// HandleAction applies one decoded action and reports whether the screen
// needs a redraw. Cursor moves count; an action with no effect does not.
func (mh *ModeHandler) HandleAction(ae input.ActionEvent) bool {
	if ae.Action == input.ActionUnknown {
		return false
	}

	switch mh.GetCurrentMode() {
	case ModePrompt:
		return mh.handleActionPrompt(ae)
	case ModeConfirm:
		pending := mh.pending
		mh.currentMode = ModeNormal
		mh.pending = input.ActionUnknown
		mh.statusBar.ResetTemporaryMessage()
		switch ae.Action {
		case pending:
			logger.Debugf("ModeHandler: %v confirmed, discarding changes", pending)
			return mh.discardAndRun(pending)
		case input.ActionSave:
			logger.Debugf("ModeHandler: saving before %v", pending)
			return mh.save(func() { mh.discardAndRun(pending) })
		}
	}

	return mh.executeAction(ae)
}

// executeAction runs an action in ModeNormal.
func (mh *ModeHandler) executeAction(ae input.ActionEvent) bool {
	ed := mh.editor

	switch ae.Action {
	case input.ActionQuit, input.ActionNew, input.ActionReload, input.ActionOpen:
		if ed.IsModified() {
			mh.arm(ae.Action)
			return true
		}
		return mh.discardAndRun(ae.Action)
	case input.ActionForceQuit:
		return mh.discardAndRun(input.ActionQuit)

	case input.ActionSave:
		return mh.save(nil)
	case input.ActionSaveAs:
		if mh.callbacks.Save == nil {
			return false
		}
		return mh.startPrompt(promptSaveAs, ed.FilePath(), nil)

	case input.ActionPaste:
		return mh.paste()

	case input.ActionMoveUp:
		ed.MoveUp()
	case input.ActionMoveDown:
		ed.MoveDown()
	case input.ActionMoveLeft:
		ed.MoveLeft()
	case input.ActionMoveRight:
		ed.MoveRight()
	case input.ActionMovePageUp:
		ed.PageMove(-1)
	case input.ActionMovePageDown:
		ed.PageMove(1)
	case input.ActionMoveHome:
		ed.MoveHome()
	case input.ActionMoveEnd:
		ed.MoveEnd()

	case input.ActionInsertRune:
		ed.InsertChar(ae.Rune)
	case input.ActionInsertNewLine:
		ed.Newline()
	case input.ActionInsertTab:
		ed.InsertTab()
	case input.ActionDeleteCharBackward:
		before := ed.GetCursor()
		ed.Backspace()
		if ed.GetCursor() == before {
			return false
		}

	case input.ActionClick:
		if mh.callbacks.HitTest == nil {
			return false
		}
		pos, ok := mh.callbacks.HitTest(ae.X, ae.Y)
		if !ok {
			return false
		}
		ed.SetCursor(pos)
	case input.ActionScrollUp:
		ed.ScrollBy(-3)
		return true
	case input.ActionScrollDown:
		ed.ScrollBy(3)
		return true

	default:
		return false
	}

	ed.ScrollToCursor()
	return true
}

// arm enters ModeConfirm for action and tells the user how to confirm.
func (mh *ModeHandler) arm(action input.Action) {
	mh.currentMode = ModeConfirm
	mh.pending = action
	mh.pendingAt = mh.now()

	verb := "quit"
	switch action {
	case input.ActionNew:
		verb = "start a new file"
	case input.ActionReload:
		verb = "reload"
	case input.ActionOpen:
		verb = "open another file"
	}
	mh.statusBar.SetTemporaryMessage("Unsaved changes! Ctrl+S to save, or repeat to %s without saving.", verb)
}

// save writes the document to its path, asking for one when it has none.
func (mh *ModeHandler) save(then func()) bool {
	if mh.callbacks.Save == nil {
		return false
	}
	path := mh.editor.FilePath()
	if path == "" {
		return mh.startPrompt(promptSaveAs, "", then)
	}
	mh.callbacks.Save(path, then)
	return true
}

// discardAndRun performs a document-replacing action without asking.
func (mh *ModeHandler) discardAndRun(action input.Action) bool {
	var cb func()
	switch action {
	case input.ActionQuit:
		cb = mh.callbacks.Quit
	case input.ActionNew:
		cb = mh.callbacks.New
	case input.ActionReload:
		cb = mh.callbacks.Reload
	case input.ActionOpen:
		if mh.callbacks.Open == nil {
			return false
		}
		return mh.startPrompt(promptOpen, "", nil)
	}
	if cb == nil {
		return false
	}
	cb()
	return true
}

func (mh *ModeHandler) paste() bool {
	if mh.callbacks.Clipboard == nil {
		mh.statusBar.SetTemporaryMessage("Clipboard disabled")
		return true
	}
	text, err := mh.callbacks.Clipboard()
	if err != nil {
		logger.Debugf("Paste error: %v", err)
		mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		return true
	}
	if text == "" {
		mh.statusBar.SetTemporaryMessage("Clipboard empty")
		return true
	}
	mh.editor.InsertText(text)
	mh.editor.ScrollToCursor()
	return true
}
