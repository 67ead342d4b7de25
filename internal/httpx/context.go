package httpx

import (
	"context"
	"net/http"
)

type ctxKey int

const requestIDCtxKey ctxKey = iota

// ContextWithRequestID stores the request id for downstream log lines.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

// RequestIDFrom returns the request id, or "" outside the middleware chain.
func RequestIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(requestIDCtxKey).(string)
	return id
}
