package modehandler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/side/internal/input"
	"github.com/bethropolis/side/internal/logger"
)

type promptKind int

const (
	promptOpen promptKind = iota
	promptSaveAs
)

func (k promptKind) label() string {
	if k == promptSaveAs {
		return "Save as: "
	}
	return "Open: "
}

// prompt is the path being typed in ModePrompt.
type prompt struct {
	kind promptKind
	text []rune
	then func() // Passed on to Save
}

// startPrompt enters ModePrompt with initial as the editable text.
func (mh *ModeHandler) startPrompt(kind promptKind, initial string, then func()) bool {
	mh.currentMode = ModePrompt
	mh.prompt = prompt{kind: kind, text: []rune(initial), then: then}
	mh.statusBar.ResetTemporaryMessage()
	mh.showPrompt()
	logger.Debugf("ModeHandler: Entering prompt %q", kind.label())
	return true
}

func (mh *ModeHandler) showPrompt() {
	mh.statusBar.SetPrompt(mh.prompt.kind.label(), string(mh.prompt.text))
}

func (mh *ModeHandler) endPrompt() {
	mh.currentMode = ModeNormal
	mh.prompt = prompt{}
	mh.statusBar.ClearPrompt()
}

// handleActionPrompt handles actions when in ModePrompt.
func (mh *ModeHandler) handleActionPrompt(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionInsertRune:
		mh.prompt.text = append(mh.prompt.text, ae.Rune)

	case input.ActionDeleteCharBackward:
		if len(mh.prompt.text) == 0 {
			mh.endPrompt()
			logger.Debugf("ModeHandler: Prompt cancelled via Backspace")
			return true
		}
		mh.prompt.text = mh.prompt.text[:len(mh.prompt.text)-1]

	case input.ActionPaste:
		if mh.callbacks.Clipboard == nil {
			return false
		}
		text, err := mh.callbacks.Clipboard()
		if err != nil {
			logger.Debugf("Paste error: %v", err)
			return false
		}
		// Only the first line can be part of a path.
		text, _, _ = strings.Cut(text, "\n")
		mh.prompt.text = append(mh.prompt.text, []rune(strings.TrimRight(text, "\r"))...)

	case input.ActionInsertNewLine:
		mh.submitPrompt()
		return true

	case input.ActionQuit:
		mh.endPrompt()
		logger.Debugf("ModeHandler: Prompt cancelled via Escape")
		return true
	case input.ActionForceQuit:
		mh.endPrompt()
		return mh.discardAndRun(input.ActionQuit)

	default:
		return false
	}

	mh.showPrompt()
	return true
}

// submitPrompt runs the prompt's operation on the typed path.
func (mh *ModeHandler) submitPrompt() {
	p := mh.prompt
	mh.endPrompt()

	path := expandHome(strings.TrimSpace(string(p.text)))
	if path == "" {
		mh.statusBar.SetTemporaryMessage("Cancelled: no file name")
		return
	}

	switch p.kind {
	case promptOpen:
		mh.callbacks.Open(path)
	case promptSaveAs:
		mh.callbacks.Save(path, p.then)
	}
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
