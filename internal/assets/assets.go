// Package assets bundles the default syntax definitions and language manifest
// into the binary. They are the last entry of every resource chain.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed syntax
var embedded embed.FS

// Syntax returns the bundled syntax directory rooted at its contents, so that
// "rust.sidel" and "languages.toml" are top-level names.
func Syntax() fs.FS {
	sub, err := fs.Sub(embedded, "syntax")
	if err != nil {
		return embedded
	}
	return sub
}
