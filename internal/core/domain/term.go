// Package domain contains the core domain model for phenotype similarity analysis.
package domain

import "sort"

// Term identifies a single phenotype term, e.g. "HP:0000118".
type Term string

// TermSet holds the recorded phenotype terms for one proband. Order and
// duplicates carry no meaning; loaders deduplicate and sort on construction.
type TermSet []Term

// NewTermSet builds a TermSet from raw term strings, dropping duplicates.
func NewTermSet(terms ...Term) TermSet {
	seen := make(map[Term]struct{}, len(terms))
	set := make(TermSet, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		set = append(set, t)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}

// Population maps proband identifiers to their recorded term sets. It is
// built once by the phenotype loader and read-only during analysis.
type Population map[string]TermSet

// SortedIDs returns all proband identifiers in ascending order.
func (p Population) SortedIDs() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GeneGroups maps gene identifiers to the probands known to carry a variant
// in that gene.
type GeneGroups map[string][]string

// SortedGenes returns all gene identifiers in ascending order.
func (g GeneGroups) SortedGenes() []string {
	genes := make([]string, 0, len(g))
	for gene := range g {
		genes = append(genes, gene)
	}
	sort.Strings(genes)
	return genes
}
