package domain

import "go.trai.ch/zerr"

// Policy selects how per-term-pair similarity values aggregate into a single
// proband-pair score.
type Policy string

const (
	// PolicyMaxIC keeps the single best term match between two probands.
	PolicyMaxIC Policy = "max_ic"

	// PolicyGeometricMean averages across all term pairs, rewarding broad
	// matching and penalizing any non-matching pair severely.
	PolicyGeometricMean Policy = "geometric_mean"
)

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyMaxIC, PolicyGeometricMean:
		return Policy(s), nil
	default:
		return "", zerr.With(ErrUnknownPolicy, "policy", s)
	}
}

// AnalysisConfig carries the tunable parameters of one analysis run.
type AnalysisConfig struct {
	// Iterations is the number of random null groups drawn per gene.
	Iterations int
	// Seed feeds the per-gene random generators. Runs with equal seeds and
	// inputs produce identical results.
	Seed int64
	// Policy picks the pair-score aggregation behavior.
	Policy Policy
	// Workers bounds how many genes are analyzed concurrently.
	Workers int
	// MinGroupSize is the smallest proband group a gene needs before it
	// is tested. Pairwise scoring needs at least two probands.
	MinGroupSize int
}

// Validate checks the configuration invariants.
func (c AnalysisConfig) Validate() error {
	if c.Iterations < 1 {
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "iterations"), "value", c.Iterations)
	}
	if c.Workers < 1 {
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "workers"), "value", c.Workers)
	}
	if c.MinGroupSize < 2 {
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "min_group_size"), "value", c.MinGroupSize)
	}
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	return nil
}
