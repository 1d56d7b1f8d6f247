package bitvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// It is the default for vectors created without WithLogger.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogAlloc logs the allocation of a vector.
func (l *Logger) LogAlloc(capacity, words, wordSize int, fill bool) {
	l.Debug("vector allocated",
		"capacity", capacity,
		"words", words,
		"word_size", wordSize,
		"fill", fill,
	)
}

// LogSplit logs a split of a vector into two views.
// mode is "shared" for read-only views and "exclusive" for mutable ones.
func (l *Logger) LogSplit(mode string, index, left, right int) {
	l.Debug("vector split",
		"mode", mode,
		"index", index,
		"left_capacity", left,
		"right_capacity", right,
	)
}
