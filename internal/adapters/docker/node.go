package docker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.anops.dev/ao/internal/adapters/logger"
	"go.anops.dev/ao/internal/adapters/shell"
	"go.anops.dev/ao/internal/core/ports"
)

// NodeID identifies the container image builder node.
const NodeID graft.ID = "adapter.image_builder"

func init() {
	graft.Register(graft.Node[ports.ImageBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ImageBuilder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(executor, log), nil
		},
	})
}
