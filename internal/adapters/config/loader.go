// Package config provides the analysis configuration loader for hposim.
package config

import (
	"os"
	"runtime"

	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Defaults returns the analysis settings used when no configuration file
// and no command line overrides are given.
func Defaults() domain.AnalysisConfig {
	return domain.AnalysisConfig{
		Iterations:   1000,
		Seed:         1,
		Policy:       domain.PolicyMaxIC,
		Workers:      runtime.NumCPU(),
		MinGroupSize: 2,
	}
}

// Load reads the configuration file at path. Keys absent from the file
// keep their default values. An empty path returns the defaults
// unchanged.
func (l *Loader) Load(path string) (domain.AnalysisConfig, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	dto := Simfile{
		Iterations:   cfg.Iterations,
		Seed:         cfg.Seed,
		Policy:       string(cfg.Policy),
		Workers:      cfg.Workers,
		MinGroupSize: cfg.MinGroupSize,
	}
	// #nosec G304 -- path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AnalysisConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.AnalysisConfig{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	policy, err := domain.ParsePolicy(dto.Policy)
	if err != nil {
		return domain.AnalysisConfig{}, zerr.With(err, "path", path)
	}

	cfg = domain.AnalysisConfig{
		Iterations:   dto.Iterations,
		Seed:         dto.Seed,
		Policy:       policy,
		Workers:      dto.Workers,
		MinGroupSize: dto.MinGroupSize,
	}
	if err := cfg.Validate(); err != nil {
		return domain.AnalysisConfig{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("configuration loaded", "path", path)
	return cfg, nil
}
