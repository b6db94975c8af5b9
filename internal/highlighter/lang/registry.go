// Package lang maps file paths to language names using the language manifest.
package lang

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/syntax"
)

// Registry holds the active language set and its extension index.
type Registry struct {
	mu            sync.RWMutex
	languages     []*Language
	byName        map[string]*Language
	extToLanguage map[string]*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:        make(map[string]*Language),
		extToLanguage: make(map[string]*Language),
	}
}

type manifest struct {
	Languages []*Language `toml:"language"`
}

// ParseManifest builds a registry from a languages.toml document.
func ParseManifest(data []byte) (*Registry, error) {
	var m manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, fmt.Errorf("failed to parse language manifest: %w", err)
	}
	r := NewRegistry()
	for _, l := range m.Languages {
		if l == nil || l.Name == "" {
			logger.Warnf("lang: skipping manifest entry without a name")
			continue
		}
		r.Register(l)
	}
	return r, nil
}

// Register adds a language. A later registration of the same extension wins.
func (r *Registry) Register(l *Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[l.Name]; !ok {
		r.languages = append(r.languages, l)
	}
	r.byName[l.Name] = l

	for _, ext := range l.Extensions {
		key := normalizeExt(ext)
		if key == "" {
			continue
		}
		if existing, ok := r.extToLanguage[key]; ok && existing.Name != l.Name {
			logger.Warnf("lang: extension %q already registered to %s, overriding with %s",
				key, existing.Name, l.Name)
		}
		r.extToLanguage[key] = l
	}
	logger.DebugTagf("lang", "registered language %s with extensions %v", l.Name, l.Extensions)
}

// Has reports whether name is in the active language set.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// Resolve maps an extension (any case, dot optional) to a language name.
// Unknown or empty extensions resolve to the plain language.
func (r *Registry) Resolve(ext string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.extToLanguage[normalizeExt(ext)]; ok {
		return l.Name
	}
	return syntax.PlainLanguage
}

// ResolveFile resolves the language of a file path by its extension.
func (r *Registry) ResolveFile(path string) string {
	if path == "" {
		return syntax.PlainLanguage
	}
	return r.Resolve(filepath.Ext(path))
}

// All returns the registered languages sorted by name.
func (r *Registry) All() []*Language {
	r.mu.RLock()
	result := make([]*Language, len(r.languages))
	copy(result, r.languages)
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
