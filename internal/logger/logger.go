// Package logger wraps zap with a request-scoped view.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

type LogMiddleware struct {
	base *zap.Logger
}

// New builds a logger at the given level ("debug", "info", "warn", "error")
// using either the "json" or "console" encoder.
func New(level, format string) (*LogMiddleware, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var cfg zap.Config
	switch format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &LogMiddleware{base: l}, nil
}

// Wrap adopts an existing zap logger, e.g. zap.NewNop() or an observer in tests.
func Wrap(l *zap.Logger) *LogMiddleware {
	return &LogMiddleware{base: l}
}

// WithRequestID stores id in ctx for Logger to pick up.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Logger returns the base logger, tagged with the request id when ctx has one.
func (m *LogMiddleware) Logger(ctx context.Context) *zap.Logger {
	if id := RequestID(ctx); id != "" {
		return m.base.With(zap.String("request_id", id))
	}
	return m.base
}

func (m *LogMiddleware) Sync() error {
	return m.base.Sync()
}
