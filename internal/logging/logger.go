// Package logging provides the structured Logger used across dtwconn, an
// slog-backed implementation and a no-op implementation for tests.
package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Logger defines methods for structured logging.
//
// All methods accept key-value pairs for structured fields. The interface is
// small enough to be satisfied by zap.SugaredLogger as well.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level.
	Error(msg string, keysAndValues ...any)
}

// ParseLevel maps "debug", "info", "warn" and "error" (case-insensitive) to a
// slog level. An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}
