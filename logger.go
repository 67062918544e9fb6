package mzgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with mzgo-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
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

// WithSearchUUID adds a search_uuid field to the logger.
func (l *Logger) WithSearchUUID(searchUUID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("search_uuid", searchUUID),
	}
}

// WithMSRun adds an ms_run field to the logger.
func (l *Logger) WithMSRun(msRunName string) *Logger {
	return &Logger{
		Logger: l.Logger.With("ms_run", msRunName),
	}
}

// WithSpectrumID adds a spectrum_id field to the logger.
func (l *Logger) WithSpectrumID(spectrumID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("spectrum_id", spectrumID),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPut logs a put operation.
func (l *Logger) LogPut(ctx context.Context, entity, key string, err error) {
	if err != nil {
		l.WarnContext(ctx, "put rejected",
			"entity", entity,
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "put completed",
			"entity", entity,
			"key", key,
		)
	}
}

// LogGet logs a get operation.
func (l *Logger) LogGet(ctx context.Context, entity, key string, err error) {
	if err != nil {
		l.WarnContext(ctx, "get failed",
			"entity", entity,
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "get completed",
			"entity", entity,
			"key", key,
		)
	}
}

// LogHistograms logs a score histogram computation.
func (l *Logger) LogHistograms(ctx context.Context, spectrumID string, identifications int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "score histograms failed",
			"spectrum_id", spectrumID,
			"identifications", identifications,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "score histograms computed",
			"spectrum_id", spectrumID,
			"identifications", identifications,
		)
	}
}

// LogExport logs an export operation.
func (l *Logger) LogExport(ctx context.Context, entity, key string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"entity", entity,
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "export completed",
			"entity", entity,
			"key", key,
			"bytes", size,
		)
	}
}

// LogImport logs an import operation.
func (l *Logger) LogImport(ctx context.Context, entity, key string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "import failed",
			"entity", entity,
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "import completed",
			"entity", entity,
			"key", key,
			"bytes", size,
		)
	}
}
