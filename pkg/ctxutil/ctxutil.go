package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	principalKey ctxKey = "principal"
	requestIDKey ctxKey = "request_id"
)

// Principal is the identity a request acts for. Placeholder is set when no
// credentials were presented and the configured default owner stands in.
type Principal struct {
	UserID      uuid.UUID
	Placeholder bool
}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx extracts the principal from the context.
// Returns false if the value is missing, has a nil user ID, or has the wrong type.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

// UserIDFromCtx returns the principal's user ID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFromCtx(ctx)
	return p.UserID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
