// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import "context"

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID attaches the authenticated user's ID (the identity provider
// subject).
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the authenticated user's ID; ok is false for
// anonymous requests.
func UserIDFromCtx(ctx context.Context) (id string, ok bool) {
	id, _ = ctx.Value(userIDKey{}).(string)
	return id, id != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
