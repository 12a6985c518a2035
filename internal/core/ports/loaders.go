package ports

import "github.com/phenolab/hposim/internal/core/domain"

// OntologyLoader defines the interface for loading the phenotype term graph.
//
//go:generate mockgen -source=loaders.go -destination=mocks/mock_loaders.go -package=mocks
type OntologyLoader interface {
	// Load reads a term-graph file and returns the validated ontology.
	Load(path string) (*domain.Ontology, error)
}

// PhenotypeLoader defines the interface for loading proband phenotypes.
type PhenotypeLoader interface {
	// Load reads proband term sets, resolving alternate identifiers against
	// the ontology. Probands without any usable terms are dropped; terms not
	// placeable in the graph are kept and discounted downstream.
	Load(path string, ont *domain.Ontology) (domain.Population, error)
}

// VariantLoader defines the interface for loading gene-to-proband tables.
type VariantLoader interface {
	// Load reads the variant table and returns probands grouped by gene.
	Load(path string) (domain.GeneGroups, error)
}
