package event

import (
	"testing"

	"github.com/bethropolis/side/internal/types"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	m := NewManager()
	var got []types.Position
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		got = append(got, e.Data.(CursorMovedData).NewPosition)
		return false
	})
	m.Subscribe(TypeBufferModified, func(e Event) bool {
		t.Error("BufferModified handler should not run for CursorMoved")
		return false
	})

	m.Dispatch(TypeCursorMoved, CursorMovedData{NewPosition: types.Position{Line: 2, Col: 3}})

	if len(got) != 1 || got[0] != (types.Position{Line: 2, Col: 3}) {
		t.Errorf("received %v, want one event at (2,3)", got)
	}
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeBufferSaved, func(Event) bool { calls++; return true })
	m.Subscribe(TypeBufferSaved, func(Event) bool { calls++; return false })

	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "a.rs"})

	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	NewManager().Dispatch(TypeCursorMoved, nil)
}
