// Package permute places observed phenotype similarity scores within an
// empirical null distribution drawn from the proband population.
package permute

import (
	"context"
	"math/rand"
	"sort"

	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/engine/similarity"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/stat"
)

// Options control a single permutation run.
type Options struct {
	// Iterations is the number of null draws. Must be at least 1.
	Iterations int

	// Seed initialises the pseudo-random source. Runs over the same
	// population with the same seed, group and iteration count produce
	// identical results.
	Seed int64
}

// Result summarises one permutation run.
type Result struct {
	// PValue is the fraction of the null distribution scoring at least
	// as high as the observed group, ranging from 0 to n/(n+1) for n
	// iterations. It never reaches 1.
	PValue float64

	// Observed is the similarity score of the observed proband group.
	Observed float64

	// NullMean and NullStdDev summarise the null score distribution.
	NullMean   float64
	NullStdDev float64
}

// Tester scores randomly drawn proband groups to judge how unusual an
// observed group score is. A Tester is safe for concurrent use; each
// Test call carries its own random source.
type Tester struct {
	scorer *similarity.Scorer
	pop    domain.Population
	ids    []string
}

// NewTester builds a Tester over the scored population. Probands without
// any phenotype terms are left out of the draw pool.
func NewTester(scorer *similarity.Scorer, pop domain.Population) (*Tester, error) {
	ids := make([]string, 0, len(pop))
	for id, terms := range pop {
		if len(terms) == 0 {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, domain.ErrEmptyPopulation
	}
	sort.Strings(ids)
	return &Tester{scorer: scorer, pop: pop, ids: ids}, nil
}

// Test ranks the similarity score of the named proband group against
// scores of random groups of the same size drawn from the rest of the
// population, without replacement, and returns the resulting empirical
// p-value.
//
// Duplicate proband IDs collapse and IDs absent from the population are
// dropped. The group needs at least two remaining probands, and the
// population outside the group must be large enough to draw from.
func (t *Tester) Test(ctx context.Context, probandIDs []string, opts Options) (Result, error) {
	if opts.Iterations < 1 {
		return Result{}, zerr.With(zerr.With(domain.ErrInvalidConfig, "field", "iterations"), "value", opts.Iterations)
	}

	member := make(map[string]struct{}, len(probandIDs))
	for _, id := range probandIDs {
		member[id] = struct{}{}
	}
	observed := make([]domain.TermSet, 0, len(member))
	pool := make([]string, 0, len(t.ids))
	for _, id := range t.ids {
		if _, ok := member[id]; ok {
			observed = append(observed, t.pop[id])
			continue
		}
		pool = append(pool, id)
	}
	if len(observed) < 2 {
		return Result{}, zerr.With(zerr.With(domain.ErrInsufficientGroup, "usable", len(observed)), "required", 2)
	}
	k := len(observed)
	if k > len(pool) {
		return Result{}, zerr.With(zerr.With(domain.ErrInsufficientPopulation, "draw", k), "pool", len(pool))
	}

	score, err := t.scorer.GroupScore(observed)
	if err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	scratch := make([]string, len(pool))
	draw := make([]domain.TermSet, k)
	null := make([]float64, 0, opts.Iterations)
	for range opts.Iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		// Draw k distinct probands with a partial Fisher-Yates pass over
		// a fresh copy of the pool.
		copy(scratch, pool)
		for i := range k {
			j := i + rng.Intn(len(scratch)-i)
			scratch[i], scratch[j] = scratch[j], scratch[i]
		}
		for i := range k {
			draw[i] = t.pop[scratch[i]]
		}
		v, err := t.scorer.GroupScore(draw)
		if err != nil {
			return Result{}, err
		}
		null = append(null, v)
	}

	sort.Float64s(null)
	pos := sort.SearchFloat64s(null, score)
	n := len(null)

	mean, std := stat.MeanStdDev(null, nil)
	if n < 2 {
		std = 0
	}
	return Result{
		PValue:     float64(n-pos) / float64(n+1),
		Observed:   score,
		NullMean:   mean,
		NullStdDev: std,
	}, nil
}
