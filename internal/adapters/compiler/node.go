package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/anvil/internal/core/ports"
)

// NodeID is the unique identifier for the compiler resolver Graft node.
const NodeID graft.ID = "adapter.compiler_resolver"

func init() {
	graft.Register(graft.Node[ports.CompilerResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
