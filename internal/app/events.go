package app

import (
	"github.com/bethropolis/side/internal/event"
)

// subscribe keeps the status bar in step with the editor.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleFileChanged)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleFileChanged)
	a.eventManager.Subscribe(event.TypeLanguageChanged, a.handleLanguageChanged)
}

func (a *App) handleBufferModified(e event.Event) bool {
	a.revision++
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		a.statusBar.SetCursorInfo(data.Cursor)
	}
	a.statusBar.SetFileInfo(a.editor.FilePath(), true)
	return false
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleFileChanged(e event.Event) bool {
	a.statusBar.SetFileInfo(a.editor.FilePath(), a.editor.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	return false
}

func (a *App) handleLanguageChanged(e event.Event) bool {
	if data, ok := e.Data.(event.LanguageChangedData); ok {
		a.statusBar.SetLanguage(data.Language)
	}
	return false
}
