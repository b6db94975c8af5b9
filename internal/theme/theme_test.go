package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSpanStyle(t *testing.T) {
	th := newSideDark()
	_, defBg, _ := th.GetStyle(StyleDefault).Decompose()

	style := th.SpanStyle("#569CD6")
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewHexColor(0x569CD6) {
		t.Errorf("fg = %v, want #569CD6", fg)
	}
	if bg != defBg {
		t.Errorf("span style lost the theme background")
	}

	if got := th.SpanStyle("not-a-color"); got != th.GetStyle(StyleDefault) {
		t.Errorf("bad color should render in the default style")
	}
	if len(th.spans) != 2 {
		t.Errorf("cache holds %d entries, want 2", len(th.spans))
	}
}

func TestGetStyleFallback(t *testing.T) {
	th := newSideDark()
	if th.GetStyle("StatusBar.unknown") != th.GetStyle(StyleStatusBar) {
		t.Error("dotted name did not fall back to its base style")
	}
	if th.GetStyle("Nope") != th.GetStyle(StyleDefault) {
		t.Error("unknown name did not fall back to Default")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewHexColor(0xff0000), false},
		{" #abc ", tcell.NewHexColor(0xaabbcc), false},
		{"red", tcell.ColorRed, false},
		{"reset", tcell.ColorReset, false},
		{"#12345", tcell.ColorDefault, true},
		{"#GGGGGG", tcell.ColorDefault, true},
		{"ultraviolet", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColorString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	doc := `
name = "Paper"

[styles.Default]
fg = "#000000"
bg = "#ffffff"

[styles.LineNumber]
fg = "#888888"

[styles.Broken]
fg = "blurple"
`
	if err := os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if got := m.ListThemes(); len(got) != 2 || got[0] != "Paper" || got[1] != "Side Dark" {
		t.Fatalf("ListThemes = %v", got)
	}
	if err := m.SetTheme("paper"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	paper := m.Current()
	_, bg, _ := paper.GetStyle(StyleLineNumber).Decompose()
	if bg != tcell.NewHexColor(0xffffff) {
		t.Error("LineNumber did not inherit the Default background")
	}
	if _, ok := paper.Styles["Broken"]; ok {
		t.Error("style with an invalid color should be skipped")
	}

	if err := m.SetTheme("missing"); err == nil {
		t.Error("expected error for an unknown theme")
	}
	if m.Current() != paper {
		t.Error("failed SetTheme changed the active theme")
	}
}

func TestNewManagerWithoutDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	if m.Current() != SideDark {
		t.Error("built-in theme should be active by default")
	}
}
