package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTerm is returned when a term is declared twice during ontology construction.
	ErrDuplicateTerm = zerr.New("duplicate ontology term")

	// ErrUnknownTerm is returned when an is-a edge or alternate mapping references an undeclared term.
	ErrUnknownTerm = zerr.New("unknown ontology term")

	// ErrCyclicOntology is returned when the is-a relationships do not form a DAG.
	ErrCyclicOntology = zerr.New("ontology contains an is-a cycle")

	// ErrEmptyOntology is returned when an ontology is built without any terms.
	ErrEmptyOntology = zerr.New("ontology has no terms")

	// ErrMultipleRoots is returned when more than one term has no parent, so no
	// universal ancestor exists.
	ErrMultipleRoots = zerr.New("ontology has multiple roots")

	// ErrEmptyPopulation is returned when the tally phase ends with zero counted
	// term occurrences. Information content is undefined without usage data.
	ErrEmptyPopulation = zerr.New("no phenotype terms tallied from population")

	// ErrModelFrozen is returned when a tally is attempted after the frequency
	// model has been sealed for querying.
	ErrModelFrozen = zerr.New("frequency model is frozen")

	// ErrNoCommonAncestor is returned when two graph terms share no ancestor.
	// A single-rooted ontology cannot produce this; it signals a malformed graph.
	ErrNoCommonAncestor = zerr.New("terms share no common ancestor")

	// ErrNoScores is returned when a similarity aggregate is requested over an
	// empty score list, i.e. a proband without any recorded terms reached scoring.
	ErrNoScores = zerr.New("no pair scores to aggregate")

	// ErrUnknownPolicy is returned for an unrecognized aggregation policy name.
	ErrUnknownPolicy = zerr.New("unknown aggregation policy")

	// ErrInsufficientGroup is returned when fewer than two probands in an
	// observed group have usable term data. The test is not computable and the
	// gene is omitted from output.
	ErrInsufficientGroup = zerr.New("fewer than two probands with usable terms")

	// ErrInsufficientPopulation is returned when the candidate pool left after
	// removing the observed probands is smaller than the observed group, so null
	// groups cannot be drawn without replacement.
	ErrInsufficientPopulation = zerr.New("candidate pool smaller than observed group")

	// ErrInvalidConfig is returned when an analysis configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid analysis configuration")

	// ErrMalformedInput is returned when an input file does not match its
	// expected layout.
	ErrMalformedInput = zerr.New("malformed input file")
)
