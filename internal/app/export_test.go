package app

import (
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// Relevant exposes relevant for testing.
func Relevant(event ports.WatchEvent, buildRoot, manifest string) bool {
	return relevant(event, buildRoot, manifest)
}

// WatchDirs exposes watchDirs for testing.
func WatchDirs(reg *domain.Registry, manifest string) []string {
	return watchDirs(reg, manifest)
}
