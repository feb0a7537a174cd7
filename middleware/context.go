package middleware

import (
	"context"

	"github.com/HBortolim/btg-challenge/models"
)

// Context key type to avoid collisions
type contextKey string

// principalKey is the context key for the authenticated principal
const principalKey contextKey = "principal"

// WithPrincipal binds the authenticated user to the request context.
// The binding is request-scoped and never shared across requests.
func WithPrincipal(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// GetPrincipalFromContext retrieves the authenticated user from the
// context, or nil when the request is anonymous
func GetPrincipalFromContext(ctx context.Context) *models.User {
	if val := ctx.Value(principalKey); val != nil {
		if user, ok := val.(*models.User); ok {
			return user
		}
	}
	return nil
}

// GetUsernameFromContext returns the authenticated principal's
// username, or the empty string for anonymous requests
func GetUsernameFromContext(ctx context.Context) string {
	if user := GetPrincipalFromContext(ctx); user != nil {
		return user.Username
	}
	return ""
}
