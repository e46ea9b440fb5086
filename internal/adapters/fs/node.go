package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/reqwell/reqcheck/internal/adapters/reqfile"
	"github.com/reqwell/reqcheck/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the include resolver Graft node.
	ResolverNodeID graft.ID = "adapter.include_resolver"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.hasher"
)

func init() {
	graft.Register(graft.Node[ports.IncludeResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{reqfile.NodeID},
		Run: func(ctx context.Context) (ports.IncludeResolver, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(loader), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
