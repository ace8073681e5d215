package log

import "context"

// RequestIDKey is the context key for the HTTP request id.
type RequestIDKey struct{}

// RunIDKey is the context key for an import run id.
type RunIDKey struct{}

// WithRequestID returns ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, id)
}

// WithRunID returns ctx carrying the import run id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey{}, id)
}
