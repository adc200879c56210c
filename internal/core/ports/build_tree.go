package ports

import "go.trai.ch/anvil/internal/core/domain"

// BuildTree manages the directories of a build root.
//
//go:generate mockgen -source=build_tree.go -destination=mocks/mock_build_tree.go -package=mocks
type BuildTree interface {
	// Prepare creates the object, library and binary directories and an empty
	// status file when they do not exist yet.
	Prepare(layout domain.Layout) error

	// EnsureTargetDir creates the object directory of a single target.
	EnsureTargetDir(layout domain.Layout, target string) error

	// Clean removes build outputs. When all is set the status file is removed too.
	Clean(layout domain.Layout, all bool) error
}
