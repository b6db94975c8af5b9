package highlighter

import (
	"github.com/bethropolis/side/internal/assets"
	"github.com/bethropolis/side/internal/config"
	"github.com/bethropolis/side/internal/highlighter/lang"
	"github.com/bethropolis/side/internal/logger"
	"github.com/bethropolis/side/internal/resource"
	"github.com/bethropolis/side/internal/syntax"
)

// Stack wires the rule source chain, language registry, rule cache and
// resolver together.
type Stack struct {
	Chain       resource.Chain
	Registry    *lang.Registry
	Cache       *syntax.Cache
	Resolver    *lang.Resolver
	Highlighter *Highlighter
}

// NewStack builds a Stack from the syntax configuration. A missing or
// broken manifest leaves the registry empty, so every file is plain.
func NewStack(cfg config.SyntaxConfig) *Stack {
	chain := resource.NewChain(resource.Options{
		OverrideDir: cfg.Dir,
		SearchDisk:  cfg.SearchDisk,
		Bundled:     assets.Syntax(),
	})

	registry, err := lang.Load(chain)
	if err != nil {
		logger.Warnf("Highlighting disabled: %v", err)
		registry = lang.NewRegistry()
	}

	cache := syntax.NewCache(chain, registry)
	return &Stack{
		Chain:       chain,
		Registry:    registry,
		Cache:       cache,
		Resolver:    lang.NewResolver(registry, lang.SizePolicy{Threshold: cfg.LargeFileThreshold}),
		Highlighter: NewHighlighter(cache),
	}
}
