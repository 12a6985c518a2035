// Package report writes gene significance results as a tab-separated
// table.
package report

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultWriter = (*Writer)(nil)

var header = []string{"hgnc", "hpo_similarity_p_value"}

// Writer implements ports.ResultWriter.
type Writer struct {
	Logger ports.Logger
}

// NewWriter creates a new Writer.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{Logger: logger}
}

// Write stores one row per gene at path, in ascending gene order. An
// existing file is overwritten. P-values are formatted with the shortest
// representation that round-trips.
func (w *Writer) Write(path string, results []domain.GeneResult) error {
	rows := make([]domain.GeneResult, len(results))
	copy(rows, results)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Gene < rows[j].Gene })

	f, err := os.Create(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create report file"), "path", path)
	}

	cw := csv.NewWriter(f)
	cw.Comma = '\t'

	if err := cw.Write(header); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write report header"), "path", path)
	}
	for _, row := range rows {
		record := []string{row.Gene, strconv.FormatFloat(row.PValue, 'g', -1, 64)}
		if err := cw.Write(record); err != nil {
			_ = f.Close()
			return zerr.With(zerr.Wrap(err, "failed to write report row"), "path", path)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to flush report"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close report file"), "path", path)
	}

	w.Logger.Info("report written", "path", path, "genes", len(rows))
	return nil
}
