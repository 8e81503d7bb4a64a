package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span named name. An empty parent defaults to the span
// already in ctx, which is also logged as the creator when it differs.
type NewSpan func(ctx context.Context, name string, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, name string, parent Span) (context.Context, Span) {

		// creator
		creatorSpan, _ := SpanFrom(ctx)
		if parent == "" {
			parent = creatorSpan
		}

		// span
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		// logs
		args := []any{"name", name}
		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", creatorSpan)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
