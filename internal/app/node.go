package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/buildtree" //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/adapters/compiler"  //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/adapters/status"    //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scheduler.NodeID,
			logger.NodeID,
			status.NodeID,
			buildtree.NodeID,
			compiler.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}
	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.StatusStore](ctx)
	if err != nil {
		return nil, err
	}
	tree, err := graft.Dep[ports.BuildTree](ctx)
	if err != nil {
		return nil, err
	}
	compilers, err := graft.Dep[ports.CompilerResolver](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher := func() (ports.Watcher, error) {
		return watcher.NewWatcher(log)
	}
	return New(loader, sched, log, store, tree, compilers, newWatcher), nil
}
