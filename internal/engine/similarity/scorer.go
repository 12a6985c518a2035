package similarity

import (
	"math"
	"sort"
	"sync"

	"github.com/phenolab/hposim/internal/core/domain"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scorer computes maxIC similarity between terms, between probands, and
// across proband groups. It owns the ancestor-closure cache; one Scorer
// serves one frozen FrequencyModel and is safe for concurrent readers.
type Scorer struct {
	ont    *domain.Ontology
	model  *FrequencyModel
	policy domain.Policy

	mu       sync.RWMutex
	closures [][]int64
}

// NewScorer creates a Scorer over a frozen model with the given aggregation
// policy.
func NewScorer(model *FrequencyModel, policy domain.Policy) (*Scorer, error) {
	if _, err := domain.ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	return &Scorer{
		ont:      model.ont,
		model:    model,
		policy:   policy,
		closures: make([][]int64, model.ont.Len()),
	}, nil
}

// Policy returns the configured aggregation policy.
func (s *Scorer) Policy() domain.Policy {
	return s.policy
}

// CommonAncestors returns the terms present in both t1's and t2's ancestor
// closures; a closure contains the term itself plus all its ancestors. If
// either term is absent from the graph the result is empty.
func (s *Scorer) CommonAncestors(t1, t2 domain.Term) []domain.Term {
	i1, ok1 := s.ont.Index(t1)
	i2, ok2 := s.ont.Index(t2)
	if !ok1 || !ok2 {
		return nil
	}
	common := intersectSorted(s.closure(i1), s.closure(i2))
	out := make([]domain.Term, len(common))
	for i, ix := range common {
		out[i] = s.ont.TermAt(ix)
	}
	return out
}

// MaxIC returns the highest information content across the common ancestors
// of t1 and t2. Terms absent from the graph carry no similarity signal and
// score 0. Two graph terms sharing no ancestor mean the graph lacks a
// universal root, which is a fatal input defect.
func (s *Scorer) MaxIC(t1, t2 domain.Term) (float64, error) {
	i1, ok1 := s.ont.Index(t1)
	i2, ok2 := s.ont.Index(t2)
	if !ok1 || !ok2 {
		return 0, nil
	}
	common := intersectSorted(s.closure(i1), s.closure(i2))
	if len(common) == 0 {
		err := zerr.With(domain.ErrNoCommonAncestor, "term_1", string(t1))
		return 0, zerr.With(err, "term_2", string(t2))
	}
	best := math.Inf(-1)
	for _, ix := range common {
		if v := s.model.informationContent(ix); v > best {
			best = v
		}
	}
	return best, nil
}

// PairScore scores how well two probands' phenotypes match: MaxIC for every
// ordered term pair drawn from a and b, aggregated by the configured policy.
func (s *Scorer) PairScore(a, b domain.TermSet) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, domain.ErrNoScores
	}
	values := make([]float64, 0, len(a)*len(b))
	for _, t1 := range a {
		for _, t2 := range b {
			v, err := s.MaxIC(t1, t2)
			if err != nil {
				return 0, err
			}
			values = append(values, v)
		}
	}
	return s.aggregate(values)
}

// GroupScore sums the pair scores over every unordered pair of distinct
// probands in the group. Probands are never paired with themselves, and the
// input order does not affect the result.
func (s *Scorer) GroupScore(sets []domain.TermSet) (float64, error) {
	var sum float64
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			v, err := s.PairScore(sets[i], sets[j])
			if err != nil {
				return 0, err
			}
			sum += v
		}
	}
	return sum, nil
}

func (s *Scorer) aggregate(values []float64) (float64, error) {
	switch s.policy {
	case domain.PolicyMaxIC:
		return floats.Max(values), nil
	case domain.PolicyGeometricMean:
		// A non-positive value marks a term pairing with no shared
		// information. Its logarithm is undefined, and one such pairing
		// floors the whole pair score.
		for _, v := range values {
			if v <= 0 {
				return 0, nil
			}
		}
		return stat.GeometricMean(values, nil), nil
	default:
		return 0, zerr.With(domain.ErrUnknownPolicy, "policy", string(s.policy))
	}
}

func (s *Scorer) closure(ix int64) []int64 {
	s.mu.RLock()
	cached := s.closures[ix]
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	anc := s.ont.AncestorIndices(ix)
	closure := make([]int64, 0, len(anc)+1)
	closure = append(closure, anc...)
	closure = append(closure, ix)
	sort.Slice(closure, func(i, j int) bool { return closure[i] < closure[j] })

	s.mu.Lock()
	s.closures[ix] = closure
	s.mu.Unlock()
	return closure
}

func intersectSorted(a, b []int64) []int64 {
	var out []int64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
