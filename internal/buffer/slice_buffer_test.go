package buffer

import (
	"testing"

	"github.com/bethropolis/side/internal/types"
)

func mustLine(t *testing.T, sb *SliceBuffer, i int) string {
	t.Helper()
	line, err := sb.Line(i)
	if err != nil {
		t.Fatalf("Line(%d): %v", i, err)
	}
	return line
}

func TestNewSliceBufferHasOneEmptyLine(t *testing.T) {
	sb := NewSliceBuffer()
	if sb.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", sb.LineCount())
	}
	if got := mustLine(t, sb, 0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
}

func TestInsertRune(t *testing.T) {
	sb := NewSliceBuffer()
	sb.SetText("héllo")

	if err := sb.InsertRune(types.Position{Line: 0, Col: 2}, 'X'); err != nil {
		t.Fatal(err)
	}
	if got := mustLine(t, sb, 0); got != "héXllo" {
		t.Errorf("Line(0) = %q, want %q", got, "héXllo")
	}

	// Column past the end is clamped to an append.
	if err := sb.InsertRune(types.Position{Line: 0, Col: 99}, '!'); err != nil {
		t.Fatal(err)
	}
	if got := mustLine(t, sb, 0); got != "héXllo!" {
		t.Errorf("Line(0) = %q, want %q", got, "héXllo!")
	}

	if err := sb.InsertRune(types.Position{Line: 3, Col: 0}, 'x'); err == nil {
		t.Error("InsertRune on a missing line should fail")
	}
}

func TestDeleteRuneBefore(t *testing.T) {
	sb := NewSliceBuffer()
	sb.SetText("a日b")

	if err := sb.DeleteRuneBefore(types.Position{Line: 0, Col: 2}); err != nil {
		t.Fatal(err)
	}
	if got := mustLine(t, sb, 0); got != "ab" {
		t.Errorf("Line(0) = %q, want %q", got, "ab")
	}
	if err := sb.DeleteRuneBefore(types.Position{Line: 0, Col: 0}); err == nil {
		t.Error("DeleteRuneBefore at column 0 should fail")
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		pos        types.Position
		wantHead   string
		wantTail   string
		wantLength int
	}{
		{"middle", "hello world", types.Position{Line: 0, Col: 5}, "hello", " world", 2},
		{"start", "abc", types.Position{Line: 0, Col: 0}, "", "abc", 2},
		{"end", "abc", types.Position{Line: 0, Col: 3}, "abc", "", 2},
		{"second line", "x\nfoobar\ny", types.Position{Line: 1, Col: 3}, "foo", "bar", 4},
		{"multibyte", "añb", types.Position{Line: 0, Col: 2}, "añ", "b", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewSliceBuffer()
			sb.SetText(tt.text)
			if err := sb.SplitLine(tt.pos); err != nil {
				t.Fatal(err)
			}
			if sb.LineCount() != tt.wantLength {
				t.Fatalf("LineCount() = %d, want %d", sb.LineCount(), tt.wantLength)
			}
			if got := mustLine(t, sb, tt.pos.Line); got != tt.wantHead {
				t.Errorf("head = %q, want %q", got, tt.wantHead)
			}
			if got := mustLine(t, sb, tt.pos.Line+1); got != tt.wantTail {
				t.Errorf("tail = %q, want %q", got, tt.wantTail)
			}
		})
	}
}

func TestSplitThenInsertKeepsLinesIndependent(t *testing.T) {
	sb := NewSliceBuffer()
	sb.SetText("abcdef")
	if err := sb.SplitLine(types.Position{Line: 0, Col: 3}); err != nil {
		t.Fatal(err)
	}
	if err := sb.InsertRune(types.Position{Line: 0, Col: 3}, 'Z'); err != nil {
		t.Fatal(err)
	}
	if got := mustLine(t, sb, 0); got != "abcZ" {
		t.Errorf("Line(0) = %q, want abcZ", got)
	}
	if got := mustLine(t, sb, 1); got != "def" {
		t.Errorf("Line(1) = %q, want def", got)
	}
}

func TestJoinWithPrevious(t *testing.T) {
	sb := NewSliceBuffer()
	sb.SetText("foo\nbär\nbaz")

	prevLen, err := sb.JoinWithPrevious(1)
	if err != nil {
		t.Fatal(err)
	}
	if prevLen != 3 {
		t.Errorf("prevLen = %d, want 3", prevLen)
	}
	if sb.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", sb.LineCount())
	}
	if got := mustLine(t, sb, 0); got != "foobär" {
		t.Errorf("Line(0) = %q, want foobär", got)
	}
	if got := mustLine(t, sb, 1); got != "baz" {
		t.Errorf("Line(1) = %q, want baz", got)
	}

	if _, err := sb.JoinWithPrevious(0); err == nil {
		t.Error("JoinWithPrevious(0) should fail")
	}
}
