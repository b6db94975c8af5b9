// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (Enter, arrows, control keys) to editor actions.
type Keymap map[tcell.Key]Action

// ModKeymap maps keys combined with modifiers (Ctrl, Alt, Shift).
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often sent for Backspace
	p.keymap[tcell.KeyEscape] = ActionQuit

	// Control keys arrive as their own key codes, usually with ModCtrl set.
	ctrl := Keymap{
		tcell.KeyCtrlS: ActionSave,
		tcell.KeyCtrlW: ActionSaveAs,
		tcell.KeyCtrlO: ActionOpen,
		tcell.KeyCtrlR: ActionReload,
		tcell.KeyCtrlN: ActionNew,
		tcell.KeyCtrlV: ActionPaste,
		tcell.KeyCtrlQ: ActionForceQuit,
		tcell.KeyCtrlC: ActionQuit,
	}
	p.modKeymap[tcell.ModCtrl] = ctrl
	for key, action := range ctrl {
		p.keymap[key] = action
	}
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modKeymap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	// Shift with arrows and friends is treated like the bare key.
	if mod&^tcell.ModShift == 0 || (key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ) {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	return ActionEvent{Action: ActionUnknown}
}

// ProcessMouse translates a mouse event. Only primary clicks and the wheel
// produce actions.
func (p *InputProcessor) ProcessMouse(ev *tcell.EventMouse) ActionEvent {
	x, y := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		return ActionEvent{Action: ActionClick, X: x, Y: y}
	case buttons&tcell.WheelUp != 0:
		return ActionEvent{Action: ActionScrollUp, X: x, Y: y}
	case buttons&tcell.WheelDown != 0:
		return ActionEvent{Action: ActionScrollDown, X: x, Y: y}
	}
	return ActionEvent{Action: ActionUnknown}
}
