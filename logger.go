package ytstorage

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with gateway-specific context.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithDriver adds the active backend kind to the logger.
func (l *Logger) WithDriver(kind string) *Logger {
	return &Logger{Logger: l.Logger.With("driver", kind)}
}

// WithKey adds an object key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{Logger: l.Logger.With("key", key)}
}

// LogRPC logs one completed RPC with its outcome.
func (l *Logger) LogRPC(ctx context.Context, method string, duration time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "rpc failed",
			"method", method,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rpc completed",
			"method", method,
			"duration", duration,
		)
	}
}
