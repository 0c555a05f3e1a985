// Package http provides the authentication gate middleware and token endpoints.
package http

import (
	"context"

	authDomain "github.com/allisson/identity/internal/auth/domain"
)

// identityKey is a context key type for storing authenticated identities.
type identityKey struct{}

// projectIDKey is a context key type for storing the authorized project id.
type projectIDKey struct{}

// WithIdentity stores an authenticated identity in the context.
// Called by the authentication middleware after a successful credential check.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns (identity, true) if present, or (nil, false) if no identity was set.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}

// WithProjectID stores the authorized project id in the context.
// Called by the project middleware after a successful access check.
func WithProjectID(ctx context.Context, projectID int64) context.Context {
	return context.WithValue(ctx, projectIDKey{}, projectID)
}

// GetProjectID retrieves the authorized project id from the context.
// Returns (id, true) if present, or (0, false) if no project was resolved.
func GetProjectID(ctx context.Context) (int64, bool) {
	projectID, ok := ctx.Value(projectIDKey{}).(int64)
	return projectID, ok
}
