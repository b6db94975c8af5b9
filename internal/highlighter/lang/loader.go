package lang

import (
	"fmt"
)

// ManifestSource supplies the manifest file; resource.Chain implements it.
type ManifestSource interface {
	ReadFile(name string) ([]byte, string, error)
}

// Load reads and parses the manifest from the first source tier that has it.
func Load(src ManifestSource) (*Registry, error) {
	data, from, err := src.ReadFile(ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load language manifest: %w", err)
	}
	r, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", from, err)
	}
	return r, nil
}
