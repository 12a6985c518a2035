package ports

import "github.com/phenolab/hposim/internal/core/domain"

// ResultWriter defines the interface for emitting the per-gene report.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ResultWriter interface {
	// Write emits one row per result, ordered by gene identifier.
	Write(path string, results []domain.GeneResult) error
}
