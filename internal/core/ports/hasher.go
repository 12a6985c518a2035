package ports

// Hasher defines the interface for fingerprinting input files.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// DigestFile returns a stable hex digest of the file contents.
	DigestFile(path string) (string, error)
}
