package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/reqwell/reqcheck/internal/adapters/logger"
	"github.com/reqwell/reqcheck/internal/core/ports"
)

// NodeID is the unique identifier for the rule config loader Graft node.
const NodeID graft.ID = "adapter.rule_config_loader"

func init() {
	graft.Register(graft.Node[ports.RuleConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RuleConfigLoader, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(lg), nil
		},
	})
}
