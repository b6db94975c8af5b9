// Package resource locates text resources (syntax definitions, the language
// manifest) through an ordered list of sources. The first source that has
// the file wins.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no source in a chain has the requested file.
var ErrNotFound = errors.New("resource not found")

// Source is one place a resource may live.
type Source interface {
	// Name describes the source in logs, e.g. "dir:/home/me/.side/syntax".
	Name() string
	// ReadFile returns the file content, or an error wrapping fs.ErrNotExist.
	ReadFile(name string) ([]byte, error)
}

// DirSource reads files from a directory on disk.
type DirSource struct {
	Dir string
}

// Name implements Source.
func (d DirSource) Name() string { return "dir:" + d.Dir }

// ReadFile implements Source.
func (d DirSource) ReadFile(name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid resource name %q: %w", name, fs.ErrNotExist)
	}
	return os.ReadFile(filepath.Join(d.Dir, name))
}

// FSSource reads files from an fs.FS, typically an embed.FS.
type FSSource struct {
	Label string
	FS    fs.FS
}

// Name implements Source.
func (s FSSource) Name() string { return "fs:" + s.Label }

// ReadFile implements Source.
func (s FSSource) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid resource name %q: %w", name, fs.ErrNotExist)
	}
	return fs.ReadFile(s.FS, name)
}
