package app

import (
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/modehandler"
	"github.com/bethropolis/side/internal/render"
	"github.com/bethropolis/side/internal/types"
)

// layout sizes the editor's view to the text pane.
func (a *App) layout() (int, int) {
	width, height := a.tuiManager.Size()
	l := render.ComputeLayout(width, height, a.editor.GetBuffer().LineCount(), a.renderOpts)
	a.editor.SetViewSize(l.TextWidth(), l.ViewHeight)
	return width, height
}

// draw clears the screen and redraws all components.
func (a *App) draw() {
	width, height := a.layout()
	th := a.themeManager.Current()

	mode := a.modeHandler.GetCurrentMode()
	if mode == modehandler.ModeNormal {
		a.statusBar.SetMode("")
	} else {
		a.statusBar.SetMode(mode.String())
	}

	a.tuiManager.Clear()
	win := render.Buffer(a.tuiManager, a.editor, a.stack.Highlighter, th, a.renderOpts)
	promptX := a.statusBar.Draw(a.tuiManager.GetScreen(), width, height, th)
	if mode == modehandler.ModePrompt {
		if promptX >= 0 {
			a.tuiManager.GetScreen().ShowCursor(promptX, height-1)
		} else {
			a.tuiManager.GetScreen().HideCursor()
		}
	} else {
		render.Cursor(a.tuiManager, a.editor, a.renderOpts)
	}
	a.tuiManager.Show()

	a.hadMessage = a.statusBar.HasMessage()
	logger.DebugTagf("draw", "frame %dx%d, %d lines from %d", width, height, win.Len(), win.Start)
}

func (a *App) hitTest(x, y int) (types.Position, bool) {
	width, height := a.tuiManager.Size()
	return render.ScreenToPosition(a.editor, x, y, width, height, a.renderOpts)
}
