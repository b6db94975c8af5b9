package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/side/internal/buffer"
	"github.com/bethropolis/side/internal/logger"
)

type fileOp int

const (
	opOpen fileOp = iota
	opSave
)

// fileResult is posted back to the event loop when a file operation ends.
type fileResult struct {
	op       fileOp
	path     string
	text     string
	language string
	revision int  // Document revision the save was taken from
	created  bool // The opened path did not exist yet
	then     func()
	err      error
}

// startOpen reads path on a separate goroutine. The language is resolved
// and its rule set compiled there too, so the first draw does not stall.
func (a *App) startOpen(path string) {
	if !a.begin() {
		return
	}
	go func() {
		res := fileResult{op: opOpen, path: path}
		res.text, res.created, res.err = readFile(path)
		if res.err == nil {
			res.language = a.stack.Resolver.Resolve(path)
			a.stack.Cache.Load(res.language)
		}
		a.results <- res
	}()
}

// startSave writes a snapshot of the document to path on a separate
// goroutine. then runs on the event loop if the save leaves the document
// unmodified.
func (a *App) startSave(path string, then func()) {
	if path == "" {
		a.statusBar.SetTemporaryMessage("No file name")
		return
	}
	if !a.begin() {
		return
	}
	text, revision := a.editor.Text(), a.revision
	go func() {
		res := fileResult{op: opSave, path: path, revision: revision, then: then}
		res.err = writeFile(path, text)
		if res.err == nil {
			// A save can cross the size threshold or give the file a new extension.
			res.language = a.stack.Resolver.Resolve(path)
			a.stack.Cache.Load(res.language)
		}
		a.results <- res
	}()
}

func (a *App) begin() bool {
	if a.busy {
		a.statusBar.SetTemporaryMessage("Busy, try again")
		return false
	}
	a.busy = true
	return true
}

// applyResult runs on the event loop.
func (a *App) applyResult(res fileResult) {
	a.busy = false

	switch res.op {
	case opOpen:
		if res.err != nil {
			logger.Warnf("App: %v", res.err)
			a.statusBar.SetTemporaryMessage("Open failed: %v", res.err)
			return
		}
		a.editor.LoadText(res.path, res.text)
		a.editor.SetLanguage(res.language)
		if res.created {
			a.statusBar.SetTemporaryMessage("New file %s", filepath.Base(res.path))
		} else {
			a.statusBar.SetTemporaryMessage("Opened %s (%d lines)", filepath.Base(res.path), a.editor.GetBuffer().LineCount())
		}

	case opSave:
		if res.err != nil {
			logger.Warnf("App: %v", res.err)
			a.statusBar.SetTemporaryMessage("Save FAILED: %v", res.err)
			return
		}
		a.editor.SetLanguage(res.language)
		if res.revision != a.revision {
			// Edited while the write was in flight; the document is still dirty.
			a.editor.SetFilePath(res.path)
			a.statusBar.SetFileInfo(res.path, true)
			a.statusBar.SetTemporaryMessage("Saved an earlier version to %s", filepath.Base(res.path))
			return
		}
		a.editor.MarkSaved(res.path)
		a.statusBar.SetTemporaryMessage("Saved %s", filepath.Base(res.path))
		if res.then != nil {
			res.then()
		}
	}
}

// readFile reads path as text. A path that does not exist yet opens as an
// empty document.
func readFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	// Editing works on runes, so invalid bytes would be rewritten on save.
	if err := buffer.CheckText(string(data)); err != nil {
		return "", false, fmt.Errorf("cannot edit %s: %w", filepath.Base(path), err)
	}
	return string(data), false, nil
}

// writeFile writes text to path, keeping the permissions of an existing file.
func writeFile(path, text string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
