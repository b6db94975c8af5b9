package lang

import "strings"

// ManifestFile is the name of the language manifest inside a syntax directory.
const ManifestFile = "languages.toml"

// Language is one entry of the language manifest.
type Language struct {
	// Name is the identifier used to locate the rule set (<name>.sidel).
	Name string `toml:"name"`

	// Extensions lists file extensions, with or without the leading dot.
	Extensions []string `toml:"extensions"`
}

// normalizeExt lowercases an extension and strips its leading dot.
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
