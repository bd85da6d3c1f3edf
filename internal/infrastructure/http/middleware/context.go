package middleware

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the authenticated caller, resolved from the access cookie.
type Identity struct {
	Username string
	UserID   domain.UserID
}

// WithIdentity injects the identity into the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext returns the identity from the context, or nil for
// unauthenticated requests.
func IdentityFromContext(ctx context.Context) *Identity {
	v := ctx.Value(identityContextKey)
	if v == nil {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}
