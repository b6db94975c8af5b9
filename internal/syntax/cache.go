package syntax

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bethropolis/side/internal/logger"
)

// Source supplies raw rule-set files by name; resource.Chain implements it.
type Source interface {
	ReadFile(name string) ([]byte, string, error)
}

// LanguageSet reports whether a language is part of the active set.
type LanguageSet interface {
	Has(name string) bool
}

// Cache loads each language's Definition once and serves it from memory
// afterwards. It is safe for concurrent use: lookups and inserts happen under
// one mutex, and concurrent first loads of the same language share a single
// compilation.
type Cache struct {
	source    Source
	languages LanguageSet

	mu    sync.Mutex
	defs  map[string]*Definition
	group singleflight.Group
}

// NewCache creates a cache reading from source. When languages is non-nil,
// names outside the set resolve to the fallback without touching source.
func NewCache(source Source, languages LanguageSet) *Cache {
	return &Cache{
		source:    source,
		languages: languages,
		defs:      make(map[string]*Definition),
	}
}

// Load returns the Definition for name. It never fails: a missing or
// malformed rule set yields the fallback definition, which is cached too.
func (c *Cache) Load(name string) *Definition {
	if name == "" || name == PlainLanguage {
		return Fallback()
	}
	if c.languages != nil && !c.languages.Has(name) {
		return Fallback()
	}

	if def, ok := c.lookup(name); ok {
		return def
	}

	v, _, _ := c.group.Do(name, func() (interface{}, error) {
		if def, ok := c.lookup(name); ok {
			return def, nil
		}
		def := c.compile(name)

		c.mu.Lock()
		c.defs[name] = def
		c.mu.Unlock()
		return def, nil
	})
	return v.(*Definition)
}

// Len returns the number of cached languages.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.defs)
}

func (c *Cache) lookup(name string) (*Definition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	def, ok := c.defs[name]
	return def, ok
}

func (c *Cache) compile(name string) *Definition {
	if c.source == nil {
		return Fallback()
	}
	data, from, err := c.source.ReadFile(name + FileExtension)
	if err != nil {
		logger.DebugTagf("syntax", "no rule set for %q: %v", name, err)
		return Fallback()
	}
	def, err := Parse(data)
	if err != nil {
		logger.Warnf("syntax: rule set for %q from %s is malformed, highlighting disabled: %v", name, from, err)
		return Fallback()
	}
	logger.DebugTagf("syntax", "compiled %q from %s: %d rules", name, from, len(def.Rules))
	return def
}
