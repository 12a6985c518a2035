// Package ports defines the boundary interfaces between the analysis core
// and its adapters.
package ports

// Logger defines the interface for structured logging. Args are alternating
// key-value pairs in the log/slog style.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error, args ...any)
}
