package logging

import (
	"context"
	"crypto/rand"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// EnvTraceID lets an outer process supply the trace ID for this invocation.
const EnvTraceID = "CASEDESK_TRACE_ID"

type traceIDKey struct{}

// GenerateTraceID returns a new ULID-based trace identifier.
func GenerateTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns, in order of preference, the trace ID already in
// ctx, the one supplied via CASEDESK_TRACE_ID, or a freshly generated one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	if id := os.Getenv(EnvTraceID); id != "" {
		return id
	}
	return GenerateTraceID()
}

// WithTraceID returns a child logger that tags every event with traceID.
func WithTraceID(l zerolog.Logger, traceID string) zerolog.Logger {
	if traceID == "" {
		return l
	}
	return l.With().Str("trace_id", traceID).Logger()
}
