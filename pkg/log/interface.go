// Package log provides the structured logging interface used by the discretizer
// and its supporting packages.
//
// The interface is slog-compatible and implementation-agnostic; the default
// implementation is backed by zerolog (see zerolog.go), and tests can swap in
// a TestLogger that captures JSON lines in memory.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("preprocessing.mdlp").With(
//	    log.ModelNameKey, "MDLPDiscretizer",
//	)
//	logger.Info("Fit completed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 5,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. If the number of fields is
// odd and the first one is an error, it is treated as the record's error.
type Logger interface {
	// Debug logs diagnostic detail, e.g. per-feature partitioning results.
	Debug(msg string, fields ...any)

	// Info logs operational information such as fit summaries.
	Info(msg string, fields ...any)

	// Warn logs conditions that do not stop execution.
	Warn(msg string, fields ...any)

	// Error logs failures. Errors created through pkg/errors carry a stack
	// trace which implementations may attach to the record.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It allows the package-level
// GetLogger functions to be redirected, e.g. to a test provider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
