// Package fs expands source patterns from the manifest into concrete files.
package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver expands glob patterns using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveSources expands patterns relative to root. Plain paths are kept as written,
// glob patterns are replaced by their sorted matches. Duplicates keep their first position.
// A glob that matches nothing is an error.
func (r *Resolver) ResolveSources(patterns []string, root string) ([]string, error) {
	result := make([]string, 0, len(patterns))
	add := func(path string) {
		if !slices.Contains(result, path) {
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		if !isGlob(pattern) {
			add(filepath.Clean(pattern))
			continue
		}

		abs := pattern
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, pattern)
		}
		matches, err := filepath.Glob(abs)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, "failed to glob path"), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrSourceNotFound, "pattern", pattern)
		}

		slices.Sort(matches)
		for _, match := range matches {
			if !filepath.IsAbs(pattern) {
				if rel, relErr := filepath.Rel(root, match); relErr == nil {
					match = rel
				}
			}
			add(match)
		}
	}
	return result, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
