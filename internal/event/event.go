// internal/event/event.go
package event

import "github.com/bethropolis/side/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core editor events
	TypeBufferModified // Text content changed (insert, backspace, newline)
	TypeBufferLoaded   // New content replaced the document
	TypeBufferSaved    // Document written successfully
	TypeCursorMoved    // Cursor moved without changing text

	// Shell events
	TypeLanguageChanged // Active language re-resolved (open, save as)
)

// String returns a short name used in logs.
func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeLanguageChanged:
		return "LanguageChanged"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData carries the cursor after the edit and the new line count.
type BufferModifiedData struct {
	Cursor    types.Position
	LineCount int
}

// BufferLoadedData names the source the content came from ("" for a new document).
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// LanguageChangedData holds the newly resolved language name.
type LanguageChangedData struct {
	Language string
}
