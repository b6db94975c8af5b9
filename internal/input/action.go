// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota // Default/invalid action
	ActionQuit                    // Checks the modified status first
	ActionForceQuit               // Quit without checking modified status
	ActionSave                    // Prompts for a path when the document has none
	ActionSaveAs                  // Prompts for a new path
	ActionOpen                    // Prompts for a file to open
	ActionReload                  // Re-read the current file from disk
	ActionNew                     // Start an empty, untitled document
	ActionPaste

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharBackward // Backspace key

	// --- Mouse ---
	ActionClick // Requires X and Y
	ActionScrollUp
	ActionScrollDown
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionSave:               "Save",
	ActionSaveAs:             "SaveAs",
	ActionOpen:               "Open",
	ActionReload:             "Reload",
	ActionNew:                "New",
	ActionPaste:              "Paste",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionClick:              "Click",
	ActionScrollUp:           "ScrollUp",
	ActionScrollDown:         "ScrollDown",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	X, Y   int  // Screen cell, used for ActionClick
}
