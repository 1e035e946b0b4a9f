package scaffold

import (
	"context"

	"github.com/grindlemire/graft"
	"go.anops.dev/ao/internal/adapters/logger"
	"go.anops.dev/ao/internal/core/ports"
)

// NodeID identifies the scaffolder node.
const NodeID graft.ID = "adapter.scaffolder"

func init() {
	graft.Register(graft.Node[ports.Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Scaffolder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScaffolder(log), nil
		},
	})
}
