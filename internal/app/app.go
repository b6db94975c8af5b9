// internal/app/app.go
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/side/internal/buffer"
	"github.com/bethropolis/side/internal/config"
	"github.com/bethropolis/side/internal/core"
	"github.com/bethropolis/side/internal/event"
	"github.com/bethropolis/side/internal/highlighter"
	"github.com/bethropolis/side/internal/input"
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/modehandler"
	"github.com/bethropolis/side/internal/render"
	"github.com/bethropolis/side/internal/statusbar"
	"github.com/bethropolis/side/internal/theme"
	"github.com/bethropolis/side/internal/tui"
)

// Options configures a new App.
type Options struct {
	Config   *config.Config
	FilePath string
	// Screen replaces the terminal, for tests.
	Screen tcell.Screen
	// Stack replaces the highlighting stack built from Config.Syntax.
	Stack *highlighter.Stack
}

// App encapsulates the core components and main loop of the editor. Only
// the goroutine running Run touches the editor.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	stack        *highlighter.Stack
	themeManager *theme.Manager
	renderOpts   render.Options
	filePath     string

	events   chan tcell.Event
	results  chan fileResult
	quit     chan struct{}
	quitOnce sync.Once

	busy       bool // A file operation is in flight
	revision   int  // Incremented on every text change
	hadMessage bool
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager(config.ThemesDir())
	if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
		logger.Warnf("App: %v, using %s", err, themeManager.Current().Name)
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, themeManager.Current())
	} else {
		tuiManager, err = tui.New(themeManager.Current())
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	stack := opts.Stack
	if stack == nil {
		stack = highlighter.NewStack(cfg.Syntax)
	}

	editor := core.NewEditor(buffer.NewSliceBuffer())
	editor.TabWidth = cfg.Editor.TabWidth
	editor.ScrollOff = cfg.Editor.ScrollOff

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	a := &App{
		cfg:          cfg,
		tuiManager:   tuiManager,
		editor:       editor,
		statusBar:    statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout}),
		eventManager: eventManager,
		stack:        stack,
		themeManager: themeManager,
		renderOpts:   render.Options{LineNumbers: cfg.Editor.LineNumbers},
		filePath:     opts.FilePath,
		events:       make(chan tcell.Event, 16),
		results:      make(chan fileResult, 1),
		quit:         make(chan struct{}),
	}

	callbacks := modehandler.Callbacks{
		Save:    a.startSave,
		Open:    a.startOpen,
		Reload:  a.reload,
		New:     a.newDocument,
		Quit:    a.requestQuit,
		HitTest: a.hitTest,
	}
	if cfg.Editor.SystemClipboard && !clipboard.Unsupported {
		callbacks.Clipboard = clipboard.ReadAll
	}
	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      a.statusBar,
		Callbacks:      callbacks,
		ConfirmTimeout: config.MessageTimeout,
	})

	a.subscribe()
	a.statusBar.SetLanguage(editor.Language())
	return a, nil
}

// Run starts the event loop and blocks until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.tuiManager.Events(a.events, a.quit)

	if a.filePath != "" {
		a.startOpen(a.filePath)
	}
	a.statusBar.SetTemporaryMessage("Side - Ctrl+S Save | Ctrl+W Save As | Ctrl+O Open | Ctrl+N New | Esc Quit")
	a.draw()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			if a.editor.IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil

		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.draw()
			}

		case res := <-a.results:
			a.applyResult(res)
			a.draw()

		case <-ticker.C:
			// Redraw once when a temporary message expires.
			if a.hadMessage && !a.statusBar.HasMessage() {
				a.draw()
			}
		}
	}
}

// handleEvent routes one terminal event. Returns true if a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(ev)
	}
	return false
}

func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

func (a *App) reload() {
	path := a.editor.FilePath()
	if path == "" {
		a.statusBar.SetTemporaryMessage("Nothing to reload")
		return
	}
	a.startOpen(path)
}

func (a *App) newDocument() {
	a.editor.Reset()
	a.statusBar.SetTemporaryMessage("New file")
}
