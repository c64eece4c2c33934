// ABOUTME: log/slog backed implementation of the fitness Logger interface.
// ABOUTME: Every call forwards its context so handlers can read request values.
package logging

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	base *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger wraps base. A nil base uses slog.Default().
func NewSlogLogger(base *slog.Logger) *SlogLogger {
	if base == nil {
		base = slog.Default()
	}
	return &SlogLogger{base: base}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelDebug, msg, args)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelInfo, msg, args)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelWarn, msg, args)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelError, msg, args)
}

// With returns a child logger carrying the given key-value pairs.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{base: s.base.With(args...)}
}

// emit drops the record early when the handler would discard it.
func (s *SlogLogger) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.base.Enabled(ctx, level) {
		return
	}
	s.base.Log(ctx, level, msg, args...)
}
