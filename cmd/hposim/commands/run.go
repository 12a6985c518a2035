package commands

import (
	"github.com/phenolab/hposim/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Score per-gene phenotype similarity against a permutation null",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ontology, _ := cmd.Flags().GetString("ontology")
			phenotypes, _ := cmd.Flags().GetString("phenotypes")
			variants, _ := cmd.Flags().GetString("variants")
			output, _ := cmd.Flags().GetString("output")
			configPath, _ := cmd.Flags().GetString("config")

			opts := app.RunOptions{
				ConfigPath:     configPath,
				OntologyPath:   ontology,
				PhenotypesPath: phenotypes,
				VariantsPath:   variants,
				OutputPath:     output,
			}

			// Flags override the configuration file only when set explicitly.
			if cmd.Flags().Changed("iterations") {
				v, _ := cmd.Flags().GetInt("iterations")
				opts.Iterations = &v
			}
			if cmd.Flags().Changed("seed") {
				v, _ := cmd.Flags().GetInt64("seed")
				opts.Seed = &v
			}
			if cmd.Flags().Changed("policy") {
				v, _ := cmd.Flags().GetString("policy")
				opts.Policy = &v
			}
			if cmd.Flags().Changed("workers") {
				v, _ := cmd.Flags().GetInt("workers")
				opts.Workers = &v
			}

			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("ontology", "", "Path to the ontology JSON file (plain, .gz or .bz2)")
	cmd.Flags().String("phenotypes", "", "Path to the proband phenotype JSON file (plain, .gz or .bz2)")
	cmd.Flags().String("variants", "", "Path to the variant TSV file with gene and proband columns")
	cmd.Flags().StringP("output", "o", "", "Path for the per-gene p-value TSV report")
	cmd.Flags().StringP("config", "c", "", "Path to an optional YAML analysis configuration")
	cmd.Flags().Int("iterations", 0, "Override the permutation iteration count")
	cmd.Flags().Int64("seed", 0, "Override the base seed for the permutation RNG")
	cmd.Flags().String("policy", "", "Override the pair aggregation policy (max or geometric_mean)")
	cmd.Flags().Int("workers", 0, "Override the number of concurrent gene workers")
	_ = cmd.MarkFlagRequired("ontology")
	_ = cmd.MarkFlagRequired("phenotypes")
	_ = cmd.MarkFlagRequired("variants")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
