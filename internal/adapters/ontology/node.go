package ontology

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/adapters/logger"
	"github.com/phenolab/hposim/internal/core/ports"
)

const NodeID graft.ID = "adapter.ontology_loader"

func init() {
	graft.Register(graft.Node[ports.OntologyLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.OpenerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.OntologyLoader, error) {
			opener, err := graft.Dep[*fs.Opener](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(opener, log), nil
		},
	})
}
