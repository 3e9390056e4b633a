package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field names attached by the helpers below. The logs command highlights them.
const (
	FieldComponent = "component"
	FieldTab       = "tab_id"
	FieldPane      = "pane_id"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithFields derives a child logger carrying the given fields.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Fields(fields)
	})
}

// WithComponent tags records with the subsystem producing them
// (coordinator, dispatcher, sqlite...).
func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldComponent, component)
	})
}

// WithTab tags records with the workspace tab id.
func WithTab(ctx context.Context, tabID string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldTab, tabID)
	})
}

// WithPane tags records with a pane id.
func WithPane(ctx context.Context, paneID string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldPane, paneID)
	})
}

func derive(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	child := add(FromContext(ctx).With()).Logger()
	return WithContext(ctx, child)
}
