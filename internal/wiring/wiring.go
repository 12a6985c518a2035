// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/phenolab/hposim/internal/adapters/config"
	_ "github.com/phenolab/hposim/internal/adapters/fs"
	_ "github.com/phenolab/hposim/internal/adapters/logger"
	_ "github.com/phenolab/hposim/internal/adapters/ontology"
	_ "github.com/phenolab/hposim/internal/adapters/phenotype"
	_ "github.com/phenolab/hposim/internal/adapters/report"
	_ "github.com/phenolab/hposim/internal/adapters/variant"
	// Register app nodes.
	_ "github.com/phenolab/hposim/internal/app"
)
