package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every event logged through ctx with the subsystem name
// ("daemon", "bridge", "snapshot").
func WithComponent(ctx context.Context, component string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithConnID tags events with the bridge connection they belong to.
func WithConnID(ctx context.Context, connID string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("conn_id", connID)
	})
}

// WithTabID tags events with the browser tab an event refers to.
func WithTabID(ctx context.Context, tabID int64) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Int64("tab_id", tabID)
	})
}

func withFields(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	child := add(FromContext(ctx).With()).Logger()
	return WithContext(ctx, child)
}
