package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phenolab/hposim/internal/adapters/config"
	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/adapters/logger"
	"github.com/phenolab/hposim/internal/adapters/ontology"
	"github.com/phenolab/hposim/internal/adapters/phenotype"
	"github.com/phenolab/hposim/internal/adapters/report"
	"github.com/phenolab/hposim/internal/adapters/variant"
	"github.com/phenolab/hposim/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ontology.NodeID,
			phenotype.NodeID,
			variant.NodeID,
			report.NodeID,
			fs.DigesterNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	ontologies, err := graft.Dep[ports.OntologyLoader](ctx)
	if err != nil {
		return nil, err
	}
	phenotypes, err := graft.Dep[ports.PhenotypeLoader](ctx)
	if err != nil {
		return nil, err
	}
	variants, err := graft.Dep[ports.VariantLoader](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.ResultWriter](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(configLoader, ontologies, phenotypes, variants, writer, hasher, log), nil
}
