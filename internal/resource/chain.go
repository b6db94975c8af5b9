package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/side/internal/logger"
)

// Chain is an ordered list of sources consulted front to back.
type Chain []Source

// ReadFile returns the content from the first source that has name, together
// with that source's Name. Sources failing with anything other than "not
// exist" are logged and skipped so that one unreadable directory cannot hide
// the bundled copy.
func (c Chain) ReadFile(name string) ([]byte, string, error) {
	for _, src := range c {
		data, err := src.ReadFile(name)
		if err == nil {
			logger.DebugTagf("resource", "loaded %s from %s", name, src.Name())
			return data, src.Name(), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("resource: reading %s from %s: %v", name, src.Name(), err)
		}
	}
	return nil, "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Options selects which tiers a default chain contains.
type Options struct {
	// OverrideDir is an operator-specified directory consulted first ("" to skip).
	OverrideDir string
	// SearchDisk enables the development tier: <WorkDir>/<SubDir> and <ExeDir>/<SubDir>.
	SearchDisk bool
	WorkDir    string // Defaults to the process working directory
	ExeDir     string // Defaults to the directory of the running executable
	SubDir     string // Defaults to "syntax"
	// Bundled is the last-resort filesystem compiled into the binary.
	Bundled fs.FS
}

// NewChain builds the override → disk → bundled chain described by opts.
func NewChain(opts Options) Chain {
	subDir := opts.SubDir
	if subDir == "" {
		subDir = "syntax"
	}

	var chain Chain
	if opts.OverrideDir != "" {
		chain = append(chain, DirSource{Dir: opts.OverrideDir})
	}
	if opts.SearchDisk {
		workDir := opts.WorkDir
		if workDir == "" {
			if wd, err := os.Getwd(); err == nil {
				workDir = wd
			}
		}
		if workDir != "" {
			chain = append(chain, DirSource{Dir: filepath.Join(workDir, subDir)})
		}

		exeDir := opts.ExeDir
		if exeDir == "" {
			if exe, err := os.Executable(); err == nil {
				exeDir = filepath.Dir(exe)
			}
		}
		if exeDir != "" && exeDir != workDir {
			chain = append(chain, DirSource{Dir: filepath.Join(exeDir, subDir)})
		}
	}
	if opts.Bundled != nil {
		chain = append(chain, FSSource{Label: "bundled", FS: opts.Bundled})
	}
	return chain
}
