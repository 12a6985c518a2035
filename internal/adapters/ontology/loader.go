// Package ontology loads the phenotype term graph from its JSON export.
package ontology

import (
	"encoding/json"

	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OntologyLoader = (*Loader)(nil)

// termDTO mirrors one entry of the terms array in the ontology JSON
// export.
type termDTO struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Parents    []string `json:"parents"`
	AltIDs     []string `json:"alt_ids"`
	Obsolete   bool     `json:"obsolete"`
	ReplacedBy string   `json:"replaced_by"`
}

type ontologyDTO struct {
	Terms []termDTO `json:"terms"`
}

// Loader implements ports.OntologyLoader on the JSON term export.
type Loader struct {
	Opener *fs.Opener
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(opener *fs.Opener, logger ports.Logger) *Loader {
	return &Loader{Opener: opener, Logger: logger}
}

// Load reads the ontology file at path and assembles the term graph.
// Obsolete terms with a replacement become aliases of that replacement,
// like alternate IDs; obsolete terms without one are left out so the
// scoring core discounts them.
func (l *Loader) Load(path string) (*domain.Ontology, error) {
	r, err := l.Opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	var dto ontologyDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse ontology file"), "path", path)
	}

	b := domain.NewOntologyBuilder()

	// First pass: declare live terms so edges can refer to any of them.
	for _, term := range dto.Terms {
		if term.Obsolete {
			continue
		}
		if err := b.AddTerm(domain.Term(term.ID)); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	// Second pass: is-a edges and identifier aliases.
	dropped := 0
	aliases := 0
	for _, term := range dto.Terms {
		if term.Obsolete {
			if term.ReplacedBy == "" {
				dropped++
				continue
			}
			if err := b.AddAlternate(domain.Term(term.ID), domain.Term(term.ReplacedBy)); err != nil {
				return nil, zerr.With(err, "path", path)
			}
			aliases++
			continue
		}
		for _, parent := range term.Parents {
			if err := b.AddIsA(domain.Term(term.ID), domain.Term(parent)); err != nil {
				return nil, zerr.With(err, "path", path)
			}
		}
		for _, alt := range term.AltIDs {
			if err := b.AddAlternate(domain.Term(alt), domain.Term(term.ID)); err != nil {
				return nil, zerr.With(err, "path", path)
			}
			aliases++
		}
	}

	ont, err := b.Build()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Info("ontology loaded",
		"path", path,
		"terms", ont.Len(),
		"aliases", aliases,
		"obsolete_dropped", dropped,
	)
	return ont, nil
}
