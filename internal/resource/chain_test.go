package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestChainFirstHitWins(t *testing.T) {
	override := t.TempDir()
	work := t.TempDir()
	writeFile(t, override, "rust.sidel", "override")
	writeFile(t, filepath.Join(work, "syntax"), "rust.sidel", "disk")
	writeFile(t, filepath.Join(work, "syntax"), "go.sidel", "disk-go")

	bundled := fstest.MapFS{
		"rust.sidel": {Data: []byte("bundled")},
		"toml.sidel": {Data: []byte("bundled-toml")},
	}
	chain := NewChain(Options{
		OverrideDir: override,
		SearchDisk:  true,
		WorkDir:     work,
		ExeDir:      work,
		Bundled:     bundled,
	})

	tests := []struct {
		name string
		want string
	}{
		{"rust.sidel", "override"},
		{"go.sidel", "disk-go"},
		{"toml.sidel", "bundled-toml"},
	}
	for _, tt := range tests {
		data, _, err := chain.ReadFile(tt.name)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", tt.name, err)
		}
		if string(data) != tt.want {
			t.Errorf("ReadFile(%s) = %q, want %q", tt.name, data, tt.want)
		}
	}
}

func TestChainWithoutDiskTier(t *testing.T) {
	work := t.TempDir()
	writeFile(t, filepath.Join(work, "syntax"), "rust.sidel", "disk")

	chain := NewChain(Options{
		SearchDisk: false,
		WorkDir:    work,
		Bundled:    fstest.MapFS{"rust.sidel": {Data: []byte("bundled")}},
	})
	if len(chain) != 1 {
		t.Fatalf("chain has %d sources, want only the bundled one", len(chain))
	}
	data, src, err := chain.ReadFile("rust.sidel")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "bundled" || src != "fs:bundled" {
		t.Errorf("got %q from %s, want bundled copy", data, src)
	}
}

func TestChainNotFound(t *testing.T) {
	chain := NewChain(Options{Bundled: fstest.MapFS{}})
	_, _, err := chain.ReadFile("missing.sidel")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSourcesRejectEscapingNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "secret", "x")
	inner := filepath.Join(dir, "inner")
	if err := os.Mkdir(inner, 0o755); err != nil {
		t.Fatal(err)
	}

	chain := Chain{DirSource{Dir: inner}, FSSource{Label: "empty", FS: fstest.MapFS{}}}
	if _, _, err := chain.ReadFile("../secret"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound for a path outside the source", err)
	}
}
