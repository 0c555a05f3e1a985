// Package service provides bearer token signing and verification.
//
// Tokens are HMAC-signed JWTs with issued-at and expiry claims. Verification
// checks the signature, the signing method, and the expiry; an expired token
// and a mis-signed token are indistinguishable failures to the caller.
package service

import (
	"github.com/allisson/identity/internal/auth/domain"
)

// TokenService defines operations for bearer token creation and verification.
type TokenService interface {
	// CreateFromProjectInfo signs a token representing a delegated
	// API-key-backed session for the given key hash, project, and scopes.
	CreateFromProjectInfo(keyHash string, projectID int64, scopes []string) (string, error)

	// CreateFromUserEmail signs a token representing a user session.
	// Credential verification is the caller's responsibility.
	CreateFromUserEmail(email string) (string, error)

	// Verify checks a token's signature and expiry and returns its claims.
	// All failure modes collapse into the same error.
	Verify(token string) (*domain.TokenClaims, error)
}
