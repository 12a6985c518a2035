package report

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phenolab/hposim/internal/adapters/logger"
	"github.com/phenolab/hposim/internal/core/ports"
)

const NodeID graft.ID = "adapter.result_writer"

func init() {
	graft.Register(graft.Node[ports.ResultWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ResultWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
