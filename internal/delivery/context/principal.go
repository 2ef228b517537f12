package context

import (
	"context"

	"storefront/internal/domain/entity"
)

// KeyPrincipal is the key for storing the authenticated principal in context.
const KeyPrincipal ContextKey = "principal"

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the authenticated principal from context.Context.
// Returns nil when the request is unauthenticated.
func GetPrincipal(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}
