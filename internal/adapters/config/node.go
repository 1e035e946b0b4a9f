package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.anops.dev/ao/internal/adapters/logger"
	"go.anops.dev/ao/internal/core/ports"
)

// NodeID identifies the configuration loader node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
