package ports

import "go.trai.ch/anvil/internal/core/domain"

// Renderer presents build progress.
//
// Calls arrive from a single goroutine in submission order, so implementations
// print lines in the order commands were issued, not the order they finished.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnNothingToBuild is called when every target is up to date.
	OnNothingToBuild()

	// OnCommandDone is called for a command that exited successfully.
	// output holds everything the command wrote.
	OnCommandDone(p domain.Progress, cmd domain.Command, output []byte)

	// OnCommandFailed is called for the first command that exited non-zero.
	OnCommandFailed(p domain.Progress, cmd domain.Command, exitCode int, output []byte)
}
