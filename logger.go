package vector

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with container-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogGrow logs a backing storage growth event.
func (l *Logger) LogGrow(oldCap, newCap int) {
	l.Debug("growing backing storage",
		"old_capacity", oldCap,
		"new_capacity", newCap,
	)
}

// LogAdd logs an element copy-in (Add or Insert).
func (l *Logger) LogAdd(index, size int, err error) {
	if err != nil {
		l.Error("add failed",
			"index", index,
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("add completed",
			"index", index,
			"size", size,
		)
	}
}

// LogDelete logs an element removal.
func (l *Logger) LogDelete(index, remaining int) {
	l.Debug("delete completed",
		"index", index,
		"remaining", remaining,
	)
}
