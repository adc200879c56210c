package buildtree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/anvil/internal/adapters/status" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/anvil/internal/core/ports"
)

// NodeID is the unique identifier for the build tree Graft node.
const NodeID graft.ID = "adapter.build_tree"

func init() {
	graft.Register(graft.Node[ports.BuildTree]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{status.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildTree, error) {
			store, err := graft.Dep[ports.StatusStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, log), nil
		},
	})
}
