package domain

import (
	"errors"
	"sort"

	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Replacement chains in real ontologies are short; the cap guards against
// accidental alias loops in hand-built inputs.
const maxAlternateHops = 8

// Ontology is an immutable rooted DAG of phenotype terms. Edges run from
// child to parent, so walking out-edges climbs toward the root. Nodes are
// addressed by dense int64 indices; the symbol table maps term identifiers
// to indices at the boundary so caches can key by index.
type Ontology struct {
	dag   *simple.DirectedGraph
	index map[Term]int64
	terms []Term
	alt   map[Term]Term
	root  int64
}

// OntologyBuilder accumulates terms, is-a edges and alternate-identifier
// mappings, then validates the whole graph in Build.
type OntologyBuilder struct {
	dag   *simple.DirectedGraph
	index map[Term]int64
	terms []Term
	alt   map[Term]Term
}

// NewOntologyBuilder creates an empty builder.
func NewOntologyBuilder() *OntologyBuilder {
	return &OntologyBuilder{
		dag:   simple.NewDirectedGraph(),
		index: make(map[Term]int64),
		alt:   make(map[Term]Term),
	}
}

// AddTerm declares a term as a graph node.
func (b *OntologyBuilder) AddTerm(t Term) error {
	if _, exists := b.index[t]; exists {
		return zerr.With(ErrDuplicateTerm, "term", string(t))
	}
	n := b.dag.NewNode()
	b.dag.AddNode(n)
	b.index[t] = n.ID()
	b.terms = append(b.terms, t)
	return nil
}

// AddIsA records that child is-a parent. Both terms must already be declared.
func (b *OntologyBuilder) AddIsA(child, parent Term) error {
	ci, ok := b.index[child]
	if !ok {
		return zerr.With(zerr.With(ErrUnknownTerm, "term", string(child)), "role", "child")
	}
	pi, ok := b.index[parent]
	if !ok {
		return zerr.With(zerr.With(ErrUnknownTerm, "term", string(parent)), "role", "parent")
	}
	if ci == pi {
		return zerr.With(ErrCyclicOntology, "term", string(child))
	}
	b.dag.SetEdge(b.dag.NewEdge(b.dag.Node(ci), b.dag.Node(pi)))
	return nil
}

// AddAlternate maps a retired or obsolete identifier onto its current one.
// The alternate must not collide with a declared term.
func (b *OntologyBuilder) AddAlternate(alt, primary Term) error {
	if _, exists := b.index[alt]; exists {
		return zerr.With(zerr.With(ErrDuplicateTerm, "term", string(alt)), "role", "alternate")
	}
	b.alt[alt] = primary
	return nil
}

// Build validates the accumulated graph and returns the immutable Ontology.
// The graph must be a non-empty DAG with exactly one parentless term, the
// universal root every other term can reach.
func (b *OntologyBuilder) Build() (*Ontology, error) {
	if len(b.terms) == 0 {
		return nil, ErrEmptyOntology
	}
	if _, err := topo.Sort(b.dag); err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) && len(cycles) > 0 && len(cycles[0]) > 0 {
			return nil, zerr.With(ErrCyclicOntology, "term", string(b.terms[cycles[0][0].ID()]))
		}
		return nil, zerr.Wrap(err, "ontology validation")
	}

	root := int64(-1)
	nodes := b.dag.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		if b.dag.From(id).Len() > 0 {
			continue
		}
		if root >= 0 {
			err := zerr.With(ErrMultipleRoots, "root_1", string(b.terms[root]))
			return nil, zerr.With(err, "root_2", string(b.terms[id]))
		}
		root = id
	}

	return &Ontology{
		dag:   b.dag,
		index: b.index,
		terms: b.terms,
		alt:   b.alt,
		root:  root,
	}, nil
}

// Len returns the number of terms in the graph.
func (o *Ontology) Len() int {
	return len(o.terms)
}

// HasTerm reports whether t is a node in the graph.
func (o *Ontology) HasTerm(t Term) bool {
	_, ok := o.index[t]
	return ok
}

// Index returns the dense node index for t.
func (o *Ontology) Index(t Term) (int64, bool) {
	ix, ok := o.index[t]
	return ix, ok
}

// TermAt returns the term at a node index previously produced by Index.
func (o *Ontology) TermAt(ix int64) Term {
	return o.terms[ix]
}

// Root returns the universal ancestor term.
func (o *Ontology) Root() Term {
	return o.terms[o.root]
}

// Canonical resolves an alternate or replaced identifier to its current
// form, following short replacement chains. Unmapped terms pass through.
func (o *Ontology) Canonical(t Term) Term {
	for range maxAlternateHops {
		next, ok := o.alt[t]
		if !ok {
			return t
		}
		t = next
	}
	return t
}

// AncestorsOf returns every term reachable by climbing is-a edges from t,
// excluding t itself. Absent terms yield nil.
func (o *Ontology) AncestorsOf(t Term) []Term {
	ix, ok := o.index[t]
	if !ok {
		return nil
	}
	return o.termsAt(o.AncestorIndices(ix))
}

// DescendantsOf returns every term from which t is reachable, excluding t
// itself. Absent terms yield nil.
func (o *Ontology) DescendantsOf(t Term) []Term {
	ix, ok := o.index[t]
	if !ok {
		return nil
	}
	return o.termsAt(o.DescendantIndices(ix))
}

// AncestorIndices returns the node indices of the strict ancestors of the
// node at ix, in ascending index order.
func (o *Ontology) AncestorIndices(ix int64) []int64 {
	return o.reachable(o.dag, ix)
}

// DescendantIndices returns the node indices of the strict descendants of
// the node at ix, in ascending index order. Descendants reachable through
// several paths appear once.
func (o *Ontology) DescendantIndices(ix int64) []int64 {
	return o.reachable(reversed{o.dag}, ix)
}

func (o *Ontology) reachable(g traverse.Graph, ix int64) []int64 {
	var found []int64
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			if n.ID() != ix {
				found = append(found, n.ID())
			}
		},
	}
	bf.Walk(g, o.dag.Node(ix), nil)
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	return found
}

func (o *Ontology) termsAt(indices []int64) []Term {
	if len(indices) == 0 {
		return nil
	}
	out := make([]Term, len(indices))
	for i, ix := range indices {
		out[i] = o.terms[ix]
	}
	return out
}

// reversed flips edge direction so breadth-first walks descend instead of climb.
type reversed struct {
	*simple.DirectedGraph
}

func (g reversed) From(id int64) graph.Nodes {
	return g.DirectedGraph.To(id)
}

func (g reversed) Edge(uid, vid int64) graph.Edge {
	return g.DirectedGraph.Edge(vid, uid)
}
