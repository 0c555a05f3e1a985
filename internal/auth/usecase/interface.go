// Package usecase implements the authentication gate and token issuance logic.
package usecase

import (
	"context"

	"github.com/allisson/identity/internal/auth/domain"
)

// AuthUseCase defines the authentication and authorization operations
// performed before any resource handler executes.
type AuthUseCase interface {
	// Authenticate resolves a bearer credential into an Identity. The
	// credential is probed as an API key first and as a signed token second;
	// every failure collapses into the same generic error.
	Authenticate(ctx context.Context, credential string) (*domain.Identity, error)

	// AuthenticateUserCredentials resolves a direct email/password
	// presentation. Only SUPERADMIN users may authenticate this way.
	AuthenticateUserCredentials(ctx context.Context, email, password string) (*domain.Identity, error)

	// IssueTokenFromAPIKey validates a raw API key and signs a delegated
	// session token carrying the key's project and scopes.
	IssueTokenFromAPIKey(ctx context.Context, rawKey string) (string, error)

	// IssueTokenFromUserCredentials verifies a SUPERADMIN user's credentials
	// and signs a user session token.
	IssueTokenFromUserCredentials(ctx context.Context, email, password string) (string, error)

	// AuthorizeProject checks that the identity may act on the requested
	// project and returns the effective project id. A nil requested id falls
	// back to the project bound to the identity's API key.
	AuthorizeProject(ctx context.Context, identity *domain.Identity, requested *int64) (int64, error)
}
