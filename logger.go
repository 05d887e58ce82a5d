package primesieve

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with primesieve-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger backed by handler. A nil handler falls
// back to a text handler writing to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that emits JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that emits human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)})
	return &Logger{Logger: slog.New(handler)}
}

// LogGrow logs a sieve growth at debug level.
func (l *Logger) LogGrow(fromSegs, toSegs, numThreads uint64, dur time.Duration) {
	l.Debug("sieve grew",
		"from_segments", fromSegs,
		"to_segments", toSegs,
		"num_threads", numThreads,
		"duration", dur,
	)
}

// LogQuery logs a public query at debug level.
func (l *Logger) LogQuery(kind string, x uint64) {
	l.Debug("sieve query", "kind", kind, "x", x)
}
