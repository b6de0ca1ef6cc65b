package jarowinkler

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with comparison-specific helpers.
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
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithOptions adds the comparison options to the logger.
func (l *Logger) WithOptions(opts Options) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"ignore_case", opts.IgnoreCase,
			"weight", opts.Weight,
			"threshold", opts.Threshold,
		),
	}
}

// LogCompare logs a comparison. Byte lengths are logged, never the inputs.
func (l *Logger) LogCompare(ctx context.Context, len1, len2 int, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compare failed",
			"len1", len1,
			"len2", len2,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "compare completed",
		"len1", len1,
		"len2", len2,
		"score", score,
	)
}
