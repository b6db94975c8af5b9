package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/side/internal/config"
	"github.com/bethropolis/side/internal/input"
	"github.com/bethropolis/side/internal/modehandler"
	"github.com/bethropolis/side/internal/syntax"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Syntax.SearchDisk = false
	cfg.Editor.SystemClipboard = false

	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{Config: cfg, Screen: screen})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(a.tuiManager.Close)
	screen.SetSize(40, 10)
	return a, screen
}

// openSync runs an open to completion on the calling goroutine.
func (a *App) openSync(t *testing.T, path string) {
	t.Helper()
	a.startOpen(path)
	a.applyResult(<-a.results)
}

func (a *App) saveSync(t *testing.T, path string) {
	t.Helper()
	a.startSave(path, nil)
	a.applyResult(<-a.results)
}

// key sends a key press through the terminal event path.
func (a *App) key(k tcell.Key) bool {
	mod := tcell.ModNone
	switch k {
	case tcell.KeyEnter, tcell.KeyTab, tcell.KeyBackspace:
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			mod = tcell.ModCtrl
		}
	}
	return a.handleEvent(tcell.NewEventKey(k, 0, mod))
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func (a *App) typeText(s string) {
	for _, r := range s {
		a.modeHandler.HandleAction(input.ActionEvent{Action: input.ActionInsertRune, Rune: r})
	}
}

func TestOpenExistingFile(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	a.openSync(t, path)

	if got := a.editor.GetBuffer().LineCount(); got != 3 {
		t.Errorf("LineCount = %d, want 3", got)
	}
	if got := a.editor.Language(); got != "go" {
		t.Errorf("Language = %q, want go", got)
	}
	if a.editor.IsModified() {
		t.Error("freshly opened document is modified")
	}
	if a.busy {
		t.Error("app still busy after open")
	}
	if !strings.Contains(a.statusBar.Render(40).Right, "go") {
		t.Errorf("status bar does not show the language: %+v", a.statusBar.Render(40))
	}
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "new.rs")

	a.openSync(t, path)

	if got := a.editor.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
	if a.editor.FilePath() != path {
		t.Errorf("FilePath = %q, want %q", a.editor.FilePath(), path)
	}
	if got := a.editor.Language(); got != "rust" {
		t.Errorf("Language = %q, want rust", got)
	}
}

func TestOpenFailureKeepsDocument(t *testing.T) {
	a, _ := newTestApp(t)
	a.typeText("keep")

	a.openSync(t, t.TempDir()) // A directory cannot be read as a file

	if got := a.editor.Text(); got != "keep" {
		t.Errorf("Text() = %q, want %q", got, "keep")
	}
	if !a.statusBar.HasMessage() {
		t.Error("no error shown")
	}
}

func TestSave(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	a.openSync(t, path)
	a.typeText("hello")

	a.saveSync(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("file = %q, want %q", data, "hello")
	}
	if a.editor.IsModified() {
		t.Error("document still modified after save")
	}
	a.statusBar.ResetTemporaryMessage()
	if a.statusBar.Render(40).Modified {
		t.Error("status bar still shows [Modified]")
	}
}

func TestSaveWhileEditing(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	a.openSync(t, path)
	a.typeText("one")

	a.startSave(path, nil)
	a.typeText("two")
	a.applyResult(<-a.results)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "one" {
		t.Errorf("file = %q, want the snapshot %q", data, "one")
	}
	if !a.editor.IsModified() {
		t.Error("edits made during the save were marked saved")
	}
}

func TestSaveUntitledAsksForPath(t *testing.T) {
	a, _ := newTestApp(t)
	a.typeText("fn main() {}")

	a.key(tcell.KeyCtrlS)
	if a.busy {
		t.Fatal("save without a path started a write")
	}
	if got := a.modeHandler.GetCurrentMode(); got != modehandler.ModePrompt {
		t.Fatalf("mode = %v, want PROMPT", got)
	}

	path := filepath.Join(t.TempDir(), "main.rs")
	a.typeText(path)
	a.key(tcell.KeyEnter)
	if !a.busy {
		t.Fatal("Enter did not start the save")
	}
	a.applyResult(<-a.results)

	if got := readString(t, path); got != "fn main() {}" {
		t.Errorf("file = %q", got)
	}
	if a.editor.FilePath() != path {
		t.Errorf("FilePath = %q, want %q", a.editor.FilePath(), path)
	}
	if got := a.editor.Language(); got != "rust" {
		t.Errorf("Language = %q, want rust", got)
	}
	if a.editor.IsModified() {
		t.Error("document still modified")
	}
}

func TestSaveAsReResolvesLanguage(t *testing.T) {
	a, _ := newTestApp(t)
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(oldPath, []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}
	a.openSync(t, oldPath)
	if got := a.editor.Language(); got != syntax.PlainLanguage {
		t.Fatalf("Language = %q, want plain", got)
	}
	a.editor.MoveEnd()
	a.typeText(" = 1")

	a.key(tcell.KeyCtrlW)
	for range oldPath {
		a.key(tcell.KeyBackspace2)
	}
	newPath := filepath.Join(dir, "notes.py")
	a.typeText(newPath)
	a.key(tcell.KeyEnter)
	a.applyResult(<-a.results)

	if got := a.editor.Language(); got != "python" {
		t.Errorf("Language = %q, want python", got)
	}
	if a.editor.FilePath() != newPath {
		t.Errorf("FilePath = %q, want %q", a.editor.FilePath(), newPath)
	}
	if got := readString(t, newPath); got != "notes = 1" {
		t.Errorf("new file = %q", got)
	}
	if got := readString(t, oldPath); got != "notes" {
		t.Errorf("old file changed to %q", got)
	}
	a.statusBar.ResetTemporaryMessage()
	if seg := a.statusBar.Render(60); !strings.Contains(seg.Right, "python") || !strings.Contains(seg.Left, "notes.py") {
		t.Errorf("status bar = %+v", seg)
	}
}

func TestOpenPromptDiscardingChanges(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("package main"), 0o644); err != nil {
		t.Fatal(err)
	}
	a.typeText("scratch")

	a.key(tcell.KeyCtrlO)
	if got := a.modeHandler.GetCurrentMode(); got != modehandler.ModeConfirm {
		t.Fatalf("mode = %v, want CONFIRM", got)
	}
	a.key(tcell.KeyCtrlO)
	a.typeText(path)
	a.key(tcell.KeyEnter)
	a.applyResult(<-a.results)

	if got := a.editor.Text(); got != "package main" {
		t.Errorf("Text() = %q", got)
	}
	if got := a.editor.Language(); got != "go" {
		t.Errorf("Language = %q, want go", got)
	}
}

func TestConfirmSaveThenNew(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "draft.txt")
	a.openSync(t, path)
	a.typeText("keep me")

	a.key(tcell.KeyCtrlN)
	a.key(tcell.KeyCtrlS)
	a.applyResult(<-a.results)

	if got := readString(t, path); got != "keep me" {
		t.Errorf("file = %q", got)
	}
	if a.editor.FilePath() != "" || a.editor.Text() != "" {
		t.Errorf("no new document: path %q, text %q", a.editor.FilePath(), a.editor.Text())
	}
}

func TestConfirmSaveUntitledThenQuit(t *testing.T) {
	a, _ := newTestApp(t)
	a.typeText("x")

	a.key(tcell.KeyEscape)
	a.key(tcell.KeyCtrlS)
	path := filepath.Join(t.TempDir(), "out.txt")
	a.typeText(path)
	a.key(tcell.KeyEnter)
	a.applyResult(<-a.results)

	select {
	case <-a.quit:
	default:
		t.Fatal("did not quit after saving")
	}
	if got := readString(t, path); got != "x" {
		t.Errorf("file = %q", got)
	}
}

func TestOpenRejectsInvalidUTF8(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "latin1.txt")
	original := "caf\xe9\nline2"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}
	a.typeText("keep")

	a.openSync(t, path)

	if got := a.editor.Text(); got != "keep" {
		t.Errorf("Text() = %q, want the previous document", got)
	}
	if seg := a.statusBar.Render(80); !strings.Contains(seg.Left, "UTF-8") {
		t.Errorf("status = %q, want a UTF-8 error", seg.Left)
	}
	if got := readString(t, path); got != original {
		t.Errorf("file changed to %q", got)
	}
}

func TestDrawPrompt(t *testing.T) {
	a, screen := newTestApp(t)
	a.key(tcell.KeyCtrlO)
	a.typeText("a.go")
	a.draw()

	cells, width, height := screen.GetContents()
	var status strings.Builder
	for x := 0; x < width; x++ {
		if r := cells[(height-1)*width+x].Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.HasPrefix(status.String(), " Open: a.go") {
		t.Errorf("status row = %q", status.String())
	}
	if x, y, visible := screen.GetCursor(); !visible || x != 11 || y != height-1 {
		t.Errorf("cursor = (%d, %d, %v), want (11, %d, true)", x, y, visible, height-1)
	}
}

func TestLargeFileOpensPlain(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Syntax.SearchDisk = false
	cfg.Syntax.LargeFileThreshold = 8
	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{Config: cfg, Screen: screen})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer a.tuiManager.Close()

	path := filepath.Join(t.TempDir(), "big.rs")
	if err := os.WriteFile(path, []byte("fn main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a.openSync(t, path)

	if got := a.editor.Language(); got != syntax.PlainLanguage {
		t.Errorf("Language = %q, want plain", got)
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	a.typeText("dirty")

	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	select {
	case <-a.quit:
		t.Fatal("quit without confirmation")
	default:
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	select {
	case <-a.quit:
	default:
		t.Fatal("second Esc did not quit")
	}

	// Quitting twice must not panic on the closed channel.
	a.requestQuit()
}

func TestNewDocument(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "main.go")
	a.openSync(t, path)

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl))

	if a.editor.FilePath() != "" {
		t.Errorf("FilePath = %q, want empty", a.editor.FilePath())
	}
	if a.editor.Language() != syntax.PlainLanguage {
		t.Errorf("Language = %q, want plain", a.editor.Language())
	}
}

func TestDraw(t *testing.T) {
	a, screen := newTestApp(t)
	a.typeText("hi")
	a.draw()

	cells, width, height := screen.GetContents()
	var top strings.Builder
	for x := 0; x < 4; x++ {
		if r := cells[x].Runes; len(r) > 0 {
			top.WriteRune(r[0])
		}
	}
	if got := top.String(); got != "1 hi" {
		t.Errorf("first row = %q, want %q", got, "1 hi")
	}

	var status strings.Builder
	for x := 0; x < width; x++ {
		if r := cells[(height-1)*width+x].Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.Contains(status.String(), "[No Name]") {
		t.Errorf("status row = %q", status.String())
	}

	if x, y, visible := screen.GetCursor(); !visible || x != 4 || y != 0 {
		t.Errorf("cursor = (%d, %d, %v), want (4, 0, true)", x, y, visible)
	}
}
