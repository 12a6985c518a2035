package domain

// GeneResult is one row of the analysis report: a gene whose probands were
// tested for phenotype similarity, and the permutation p-value. Genes whose
// test is not computable never become results.
type GeneResult struct {
	Gene   string
	PValue float64
}
