package ports

import "github.com/phenolab/hposim/internal/core/domain"

// ConfigLoader defines the interface for loading the analysis configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path yields the
	// built-in defaults.
	Load(path string) (domain.AnalysisConfig, error)
}
