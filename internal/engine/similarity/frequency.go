// Package similarity implements information-content semantic similarity
// over a phenotype term graph: term usage tallying, per-term information
// content, and pair and group level score aggregation.
package similarity

import (
	"math"
	"sync"

	"github.com/phenolab/hposim/internal/core/domain"
)

// FrequencyModel tallies term usage across a reference population and
// derives per-term information content. Build it by calling Tally once per
// proband term set, then seal it with Freeze. A frozen model memoizes its
// derived values lazily and is safe for concurrent readers. Models must not
// be reused across runs with a different population.
type FrequencyModel struct {
	ont *domain.Ontology

	mu     sync.RWMutex
	counts []int64
	total  int64
	frozen bool

	// Lazily memoized, keyed by dense node index. A nil descendants entry
	// and a negative subtree entry mean "not computed yet"; ic uses NaN.
	descendants [][]int64
	subtree     []int64
	ic          []float64
}

// NewFrequencyModel creates an empty model over the given ontology.
func NewFrequencyModel(ont *domain.Ontology) *FrequencyModel {
	n := ont.Len()
	m := &FrequencyModel{
		ont:         ont,
		counts:      make([]int64, n),
		descendants: make([][]int64, n),
		subtree:     make([]int64, n),
		ic:          make([]float64, n),
	}
	for i := range n {
		m.subtree[i] = -1
		m.ic[i] = math.NaN()
	}
	return m
}

// BuildModel tallies every proband term set in the population and freezes
// the model for querying.
func BuildModel(ont *domain.Ontology, pop domain.Population) (*FrequencyModel, error) {
	m := NewFrequencyModel(ont)
	for _, id := range pop.SortedIDs() {
		if err := m.Tally(pop[id]); err != nil {
			return nil, err
		}
	}
	if err := m.Freeze(); err != nil {
		return nil, err
	}
	return m, nil
}

// Tally records one occurrence of every graph-placeable term in set. Terms
// absent from the graph are dropped and do not affect the total.
func (m *FrequencyModel) Tally(set domain.TermSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return domain.ErrModelFrozen
	}
	for _, t := range set {
		ix, ok := m.ont.Index(t)
		if !ok {
			continue
		}
		m.counts[ix]++
		m.total++
	}
	return nil
}

// Freeze seals the tally table. It fails if nothing was tallied, since
// information content is undefined over an empty corpus. Freezing twice is
// a no-op.
func (m *FrequencyModel) Freeze() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return nil
	}
	if m.total == 0 {
		return domain.ErrEmptyPopulation
	}
	m.frozen = true
	return nil
}

// Total returns the number of tallied term occurrences.
func (m *FrequencyModel) Total() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total
}

// Count returns the tallied occurrences of the term itself, excluding
// descendants.
func (m *FrequencyModel) Count(t domain.Term) int64 {
	ix, ok := m.ont.Index(t)
	if !ok {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counts[ix]
}

// TermCount returns the tallied occurrences of the term plus every term in
// its descendant set. Descendants reachable through several paths count
// once. Absent terms count zero.
func (m *FrequencyModel) TermCount(t domain.Term) int64 {
	ix, ok := m.ont.Index(t)
	if !ok {
		return 0
	}
	return m.subtreeCount(ix)
}

// InformationContent returns -ln(termCount/total) for the term, memoized.
// Terms absent from the graph, or whose subtree was never used in the
// population, carry no information and return 0.
func (m *FrequencyModel) InformationContent(t domain.Term) float64 {
	ix, ok := m.ont.Index(t)
	if !ok {
		return 0
	}
	return m.informationContent(ix)
}

func (m *FrequencyModel) subtreeCount(ix int64) int64 {
	m.mu.RLock()
	cached := m.subtree[ix]
	m.mu.RUnlock()
	if cached >= 0 {
		return cached
	}

	// Compute outside the lock; concurrent first queries for the same term
	// duplicate work but store the same value.
	desc := m.descendantSet(ix)
	m.mu.Lock()
	n := m.counts[ix]
	for _, d := range desc {
		n += m.counts[d]
	}
	m.subtree[ix] = n
	m.mu.Unlock()
	return n
}

func (m *FrequencyModel) descendantSet(ix int64) []int64 {
	m.mu.RLock()
	cached := m.descendants[ix]
	m.mu.RUnlock()
	if cached != nil {
		return cached
	}

	desc := m.ont.DescendantIndices(ix)
	if desc == nil {
		desc = []int64{}
	}
	m.mu.Lock()
	m.descendants[ix] = desc
	m.mu.Unlock()
	return desc
}

func (m *FrequencyModel) informationContent(ix int64) float64 {
	m.mu.RLock()
	cached := m.ic[ix]
	total := m.total
	m.mu.RUnlock()
	if !math.IsNaN(cached) {
		return cached
	}

	var v float64
	if count := m.subtreeCount(ix); count > 0 {
		v = -math.Log(float64(count) / float64(total))
	}
	m.mu.Lock()
	m.ic[ix] = v
	m.mu.Unlock()
	return v
}
