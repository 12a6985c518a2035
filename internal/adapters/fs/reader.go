// Package fs provides file access for the data loaders: transparent
// decompression of compressed inputs and content digests for run
// provenance.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/pgzip"
	"go.trai.ch/zerr"
)

// Opener opens data files for reading, decompressing gzip and bzip2
// payloads based on the file extension.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens path for reading. Files ending in .gz or .bz2 are
// decompressed on the fly. Closing the returned reader releases the
// decompressor and the underlying file.
func (o *Opener) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := pgzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to read gzip header"), "path", path)
		}
		return &layeredReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".bz2":
		zr, err := bzip2.NewReader(f, new(bzip2.ReaderConfig))
		if err != nil {
			_ = f.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to read bzip2 header"), "path", path)
		}
		return &layeredReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	default:
		return f, nil
	}
}

// layeredReader closes the decompressor before the file it reads from.
type layeredReader struct {
	io.Reader
	closers []io.Closer
}

func (l *layeredReader) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
