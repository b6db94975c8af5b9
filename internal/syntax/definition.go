// Package syntax parses and caches per-language highlighting rule sets.
//
// A rule set is a TOML document (".sidel" file):
//
//	default_color = "#D4D4D4"
//
//	[[rule]]
//	name = "keyword"
//	pattern = '\b(?:fn|let)\b'
//	color = "#569CD6"
//	priority = 10
package syntax

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/side/internal/logger"
)

const (
	// DefaultColor is used when a rule set omits default_color, and by the fallback definition.
	DefaultColor = "#D4D4D4"
	// PlainLanguage is the universal fallback language with no rules.
	PlainLanguage = "plain"
	// FileExtension is appended to a language name to locate its rule set.
	FileExtension = ".sidel"
)

// Rule is one compiled pattern→color mapping.
type Rule struct {
	Name     string // Diagnostic label only
	Pattern  *regexp.Regexp
	Color    string
	Priority int // Higher wins
}

// Definition is the compiled rule set of one language. Rules are ordered by
// descending priority; equal priorities keep declaration order.
// A Definition is never modified after it is built.
type Definition struct {
	DefaultColor string
	Rules        []Rule
}

var fallback = &Definition{DefaultColor: DefaultColor}

// Fallback returns the shared no-rules definition.
func Fallback() *Definition {
	return fallback
}

type ruleSetFile struct {
	DefaultColor *string        `toml:"default_color"`
	Rules        []ruleSetEntry `toml:"rule"`
}

type ruleSetEntry struct {
	Name     string `toml:"name"`
	Pattern  string `toml:"pattern"`
	Color    string `toml:"color"`
	Priority int    `toml:"priority"`
}

// Parse decodes and compiles a rule set. A document that is not valid TOML
// is an error; an individual rule that has no pattern or color, or whose
// pattern does not compile, is dropped and the rest still load.
func Parse(data []byte) (*Definition, error) {
	var file ruleSetFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule set: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("syntax: unrecognized keys in rule set: %v", undecoded)
	}

	def := &Definition{DefaultColor: DefaultColor}
	if file.DefaultColor != nil && *file.DefaultColor != "" {
		def.DefaultColor = *file.DefaultColor
	}

	def.Rules = make([]Rule, 0, len(file.Rules))
	for i, entry := range file.Rules {
		if entry.Pattern == "" || entry.Color == "" {
			logger.Warnf("syntax: dropping rule #%d (%q): pattern and color are required", i, entry.Name)
			continue
		}
		re, err := regexp.Compile(entry.Pattern)
		if err != nil {
			logger.Warnf("syntax: dropping rule #%d (%q): %v", i, entry.Name, err)
			continue
		}
		def.Rules = append(def.Rules, Rule{
			Name:     entry.Name,
			Pattern:  re,
			Color:    entry.Color,
			Priority: entry.Priority,
		})
	}

	sort.SliceStable(def.Rules, func(a, b int) bool {
		return def.Rules[a].Priority > def.Rules[b].Priority
	})
	return def, nil
}
