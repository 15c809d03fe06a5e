package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const TraceIDHeader = "X-Trace-Id"

type traceIDKey struct{}

// InjectTraceID attaches a fresh trace id to ctx and to the logger it carries.
func InjectTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.New().String())
}

func WithTraceID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, traceIDKey{}, id)
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// TraceID returns the trace id of ctx or an empty string.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
