package buildsys

import (
	"context"

	"github.com/rs/zerolog"
)

type logKey struct{}

var disabledLogger = zerolog.Nop()

// log returns the logger attached by WithLogger. Runs without one stay silent.
func log(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(logKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return &disabledLogger
}

// WithLogger attaches the given logger to the context
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}
