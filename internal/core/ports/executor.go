// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Executor runs compile and link command lines.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs a single shell command line and waits for it to exit.
	//
	// It returns the exit status of the command. The error is non-nil only when
	// the command could not be started or ctx was cancelled while it ran; a
	// command that runs and exits non-zero is reported through the status alone.
	Execute(ctx context.Context, line string, stdout, stderr io.Writer) (int, error)
}
