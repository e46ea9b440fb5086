package linter

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/reqwell/reqcheck/internal/adapters/cache"
	"github.com/reqwell/reqcheck/internal/adapters/fs"
	"github.com/reqwell/reqcheck/internal/adapters/logger"
	"github.com/reqwell/reqcheck/internal/core/ports"
)

// NodeID is the unique identifier for the linter Graft node.
const NodeID graft.ID = "engine.linter"

func init() {
	graft.Register(graft.Node[*Linter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, fs.HasherNodeID, cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Linter, error) {
			resolver, err := graft.Dep[ports.IncludeResolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ResultStore](ctx)
			if err != nil {
				return nil, err
			}
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinter(resolver, hasher, store, lg), nil
		},
	})
}
