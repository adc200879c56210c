package ports

import (
	"context"

	"go.trai.ch/anvil/internal/core/domain"
)

// CompilerResolver locates a C++ compiler on the host.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type CompilerResolver interface {
	// Resolve returns the compiler to use. An explicit preferred path wins, then a
	// cached path that still exists, then the first compiler found on PATH.
	Resolve(ctx context.Context, preferred, cached string) (domain.Compiler, error)
}
