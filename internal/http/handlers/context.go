package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const userKey = contextKey("username")

// WithUsername stores the authenticated username for handlers to read.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey, username)
}

// Username returns the authenticated username, or "" on public routes.
func Username(r *http.Request) string {
	if val, ok := r.Context().Value(userKey).(string); ok {
		return val
	}
	return ""
}
