// Package app implements the application layer for hposim.
package app

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports"
	"github.com/phenolab/hposim/internal/engine/permute"
	"github.com/phenolab/hposim/internal/engine/similarity"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	ontologies   ports.OntologyLoader
	phenotypes   ports.PhenotypeLoader
	variants     ports.VariantLoader
	writer       ports.ResultWriter
	hasher       ports.Hasher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	ontologies ports.OntologyLoader,
	phenotypes ports.PhenotypeLoader,
	variants ports.VariantLoader,
	writer ports.ResultWriter,
	hasher ports.Hasher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		ontologies:   ontologies,
		phenotypes:   phenotypes,
		variants:     variants,
		writer:       writer,
		hasher:       hasher,
		logger:       logger,
	}
}

// RunOptions carries the file locations and setting overrides of one
// analysis run.
type RunOptions struct {
	ConfigPath     string
	OntologyPath   string
	PhenotypesPath string
	VariantsPath   string
	OutputPath     string

	// Overrides are applied on top of the loaded configuration. A nil
	// pointer keeps the configured value.
	Iterations *int
	Seed       *int64
	Policy     *string
	Workers    *int
}

// Run executes one analysis: score every gene's proband group against
// the population and write the significance report.
//
// Genes whose groups cannot be scored (smaller than the configured
// minimum, fewer than two resolvable probands, or too few probands left
// to draw from) are omitted from the report; any other failure aborts
// the run.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	a.logDigests(opts)

	ont, err := a.ontologies.Load(opts.OntologyPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load ontology")
	}
	pop, err := a.phenotypes.Load(opts.PhenotypesPath, ont)
	if err != nil {
		return zerr.Wrap(err, "failed to load phenotypes")
	}
	genes, err := a.variants.Load(opts.VariantsPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load variants")
	}

	model, err := similarity.BuildModel(ont, pop)
	if err != nil {
		return zerr.Wrap(err, "failed to build frequency model")
	}
	scorer, err := similarity.NewScorer(model, cfg.Policy)
	if err != nil {
		return err
	}
	tester, err := permute.NewTester(scorer, pop)
	if err != nil {
		return err
	}

	a.logger.Info("analysis started",
		"genes", len(genes),
		"probands", len(pop),
		"tally_total", model.Total(),
		"iterations", cfg.Iterations,
		"policy", string(cfg.Policy),
		"workers", cfg.Workers,
		"min_group_size", cfg.MinGroupSize,
	)

	names := genes.SortedGenes()
	rows := make([]*domain.GeneResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, gene := range names {
		if len(genes[gene]) < cfg.MinGroupSize {
			a.logger.Info("gene omitted", "gene", gene, "reason", "proband group below minimum size")
			continue
		}
		g.Go(func() error {
			res, err := tester.Test(gctx, genes[gene], permute.Options{
				Iterations: cfg.Iterations,
				Seed:       geneSeed(cfg.Seed, gene),
			})
			switch {
			case errors.Is(err, domain.ErrInsufficientGroup) || errors.Is(err, domain.ErrInsufficientPopulation):
				a.logger.Info("gene omitted", "gene", gene, "reason", err.Error())
				return nil
			case err != nil:
				return zerr.With(err, "gene", gene)
			}
			rows[i] = &domain.GeneResult{Gene: gene, PValue: res.PValue}
			a.logger.Debug("gene scored",
				"gene", gene,
				"p_value", res.PValue,
				"observed", res.Observed,
				"null_mean", res.NullMean,
				"null_stddev", res.NullStdDev,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "analysis failed")
	}

	results := make([]domain.GeneResult, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			results = append(results, *row)
		}
	}

	if err := a.writer.Write(opts.OutputPath, results); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}

	a.logger.Info("analysis finished",
		"scored", len(results),
		"omitted", len(names)-len(results),
	)
	return nil
}

// resolveConfig loads the configuration file and applies the command
// line overrides, validating the merged result.
func (a *App) resolveConfig(opts RunOptions) (domain.AnalysisConfig, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.AnalysisConfig{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Iterations != nil {
		cfg.Iterations = *opts.Iterations
	}
	if opts.Seed != nil {
		cfg.Seed = *opts.Seed
	}
	if opts.Policy != nil {
		policy, err := domain.ParsePolicy(*opts.Policy)
		if err != nil {
			return domain.AnalysisConfig{}, err
		}
		cfg.Policy = policy
	}
	if opts.Workers != nil {
		cfg.Workers = *opts.Workers
	}

	if err := cfg.Validate(); err != nil {
		return domain.AnalysisConfig{}, err
	}
	return cfg, nil
}

// logDigests records the fingerprint of each input file. Digest failures
// are not fatal here; the loaders surface proper errors moments later.
func (a *App) logDigests(opts RunOptions) {
	inputs := []struct {
		name string
		path string
	}{
		{"ontology", opts.OntologyPath},
		{"phenotypes", opts.PhenotypesPath},
		{"variants", opts.VariantsPath},
	}
	for _, in := range inputs {
		digest, err := a.hasher.DigestFile(in.path)
		if err != nil {
			a.logger.Warn("failed to digest input", "input", in.name, "path", in.path)
			continue
		}
		a.logger.Info("input digest", "input", in.name, "path", in.path, "xxh64", digest)
	}
}

// geneSeed derives a per-gene random seed from the base seed, so results
// do not depend on how genes are spread across workers.
func geneSeed(base int64, gene string) int64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte{0}) // Separator
	_, _ = h.WriteString(gene)
	return int64(h.Sum64())
}
