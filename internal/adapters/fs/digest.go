package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/phenolab/hposim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Digester)(nil)

// Digester fingerprints input files so a run can be traced back to the
// exact data it read.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// DigestFile computes the XXHash of a file's content, formatted as 16
// hex digits. Compressed files are hashed as stored.
func (d *Digester) DigestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}
