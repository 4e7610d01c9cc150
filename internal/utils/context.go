// Package utils provides small helpers shared by the server, the HTTP
// adapter and the CLI: request-scoped context values, JSON response
// writing, HTTP client construction and note id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values set here
// never collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key of the trace id that the HTTP adapter
// forwards in the X-Trace-ID header.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by [WithTraceID].
// ok is false when none is set or the value is empty.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
