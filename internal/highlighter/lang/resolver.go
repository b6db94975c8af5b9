package lang

import "github.com/bethropolis/side/internal/syntax"

// Resolver picks the language for a file: by extension from the registry,
// then downgraded to plain by the size policy.
type Resolver struct {
	registry *Registry
	size     SizePolicy
}

// NewResolver creates a resolver. A nil registry resolves everything to plain.
func NewResolver(registry *Registry, size SizePolicy) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{registry: registry, size: size}
}

// Registry returns the underlying language set.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve returns the language name for path.
func (r *Resolver) Resolve(path string) string {
	name := r.registry.ResolveFile(path)
	if name == syntax.PlainLanguage {
		return name
	}
	return r.size.Apply(path, name)
}
