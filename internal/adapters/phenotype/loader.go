// Package phenotype loads proband phenotype annotations.
package phenotype

import (
	"encoding/json"

	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PhenotypeLoader = (*Loader)(nil)

// Loader implements ports.PhenotypeLoader on the proband-to-terms JSON
// map.
type Loader struct {
	Opener *fs.Opener
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(opener *fs.Opener, logger ports.Logger) *Loader {
	return &Loader{Opener: opener, Logger: logger}
}

// Load reads proband phenotype annotations from path. Terms are resolved
// to canonical identifiers through the ontology and de-duplicated per
// proband, and probands without any annotation are dropped. Terms the
// ontology cannot place are kept, since the scoring core discounts them;
// their count is reported once at warning level.
func (l *Loader) Load(path string, ont *domain.Ontology) (domain.Population, error) {
	r, err := l.Opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	var dto map[string][]string
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse phenotype file"), "path", path)
	}

	pop := make(domain.Population, len(dto))
	emptied := 0
	unresolved := 0
	for proband, raw := range dto {
		if len(raw) == 0 {
			emptied++
			continue
		}
		terms := make([]domain.Term, 0, len(raw))
		for _, s := range raw {
			term := ont.Canonical(domain.Term(s))
			if !ont.HasTerm(term) {
				unresolved++
			}
			terms = append(terms, term)
		}
		pop[proband] = domain.NewTermSet(terms...)
	}

	if unresolved > 0 {
		l.Logger.Warn("phenotype terms not in ontology", "path", path, "count", unresolved)
	}
	l.Logger.Info("phenotypes loaded",
		"path", path,
		"probands", len(pop),
		"empty_dropped", emptied,
	)
	return pop, nil
}
