// Package variant loads gene-to-proband assignments from variant tables.
package variant

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"

	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VariantLoader = (*Loader)(nil)

const (
	geneColumn    = "hgnc"
	probandColumn = "person_id"
)

// Loader implements ports.VariantLoader on tab-separated variant tables.
type Loader struct {
	Opener *fs.Opener
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(opener *fs.Opener, logger ports.Logger) *Loader {
	return &Loader{Opener: opener, Logger: logger}
}

// Load reads the variant table at path and groups probands by gene. The
// table must carry hgnc and person_id columns; others are ignored. A
// proband appears at most once per gene, however many variants it
// carries in it.
func (l *Loader) Load(path string) (domain.GeneGroups, error) {
	r, err := l.Opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	cr := csv.NewReader(r)
	cr.Comma = '\t'

	header, err := cr.Read()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read variant table header"), "path", path)
	}
	geneIx, probandIx := -1, -1
	for i, name := range header {
		switch name {
		case geneColumn:
			geneIx = i
		case probandColumn:
			probandIx = i
		}
	}
	if geneIx < 0 {
		return nil, zerr.With(zerr.With(domain.ErrMalformedInput, "missing_column", geneColumn), "path", path)
	}
	if probandIx < 0 {
		return nil, zerr.With(zerr.With(domain.ErrMalformedInput, "missing_column", probandColumn), "path", path)
	}

	seen := make(map[string]map[string]struct{})
	rows := 0
	blank := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read variant table"), "path", path)
		}
		rows++
		gene, proband := record[geneIx], record[probandIx]
		if gene == "" || proband == "" {
			blank++
			continue
		}
		if seen[gene] == nil {
			seen[gene] = make(map[string]struct{})
		}
		seen[gene][proband] = struct{}{}
	}

	groups := make(domain.GeneGroups, len(seen))
	for gene, probands := range seen {
		ids := make([]string, 0, len(probands))
		for id := range probands {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		groups[gene] = ids
	}

	if blank > 0 {
		l.Logger.Warn("variant rows with blank fields skipped", "path", path, "count", blank)
	}
	l.Logger.Info("variants loaded",
		"path", path,
		"rows", rows,
		"genes", len(groups),
	)
	return groups, nil
}
