package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/reqwell/reqcheck/internal/adapters/config"
	"github.com/reqwell/reqcheck/internal/adapters/fs"
	"github.com/reqwell/reqcheck/internal/adapters/logger"
	"github.com/reqwell/reqcheck/internal/adapters/reqfile"
	"github.com/reqwell/reqcheck/internal/adapters/watcher"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"github.com/reqwell/reqcheck/internal/engine/linter"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			linter.NodeID,
			reqfile.NodeID,
			fs.ResolverNodeID,
			config.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	lint, err := graft.Dep[*linter.Linter](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.IncludeResolver](ctx)
	if err != nil {
		return nil, err
	}
	configLoader, err := graft.Dep[ports.RuleConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(lint, loader, resolver, configLoader, watch, log), nil
}
