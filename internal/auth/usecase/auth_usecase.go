package usecase

import (
	"context"
	"log/slog"

	apiKeyUseCase "github.com/allisson/identity/internal/apikey/usecase"
	"github.com/allisson/identity/internal/auth/domain"
	authService "github.com/allisson/identity/internal/auth/service"
	userDomain "github.com/allisson/identity/internal/user/domain"
	userUseCase "github.com/allisson/identity/internal/user/usecase"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	apiKeyUseCase apiKeyUseCase.APIKeyUseCase
	tokenService  authService.TokenService
	userUseCase   userUseCase.UserUseCase
	logger        *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	apiKeyUC apiKeyUseCase.APIKeyUseCase,
	tokenService authService.TokenService,
	userUC userUseCase.UserUseCase,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		apiKeyUseCase: apiKeyUC,
		tokenService:  tokenService,
		userUseCase:   userUC,
		logger:        logger,
	}
}

// Authenticate probes the credential as an API key first and as a signed
// token second. An API key string and a signed token are not distinguishable
// a priori, so the order is fixed: the key-hash lookup is the cheaper and
// more specific check. Dependency failures during either probe are folded
// into the generic failure (fail closed), never surfaced as a server error.
func (a *authUseCase) Authenticate(ctx context.Context, credential string) (*domain.Identity, error) {
	if credential == "" {
		return nil, domain.ErrInvalidAuthToken
	}

	apiKey, err := a.apiKeyUseCase.Validate(ctx, credential)
	if err == nil {
		projectID := apiKey.ProjectID
		return &domain.Identity{
			Subject:   domain.SubjectAPIKey,
			KeyHash:   apiKey.Hash,
			ProjectID: &projectID,
			Scopes:    apiKey.Scopes,
		}, nil
	}
	a.logger.Debug("api key probe failed, trying token verification",
		slog.String("error", err.Error()))

	claims, err := a.tokenService.Verify(credential)
	if err != nil {
		return nil, domain.ErrInvalidAuthToken
	}

	if claims.IsUserSession() {
		user, err := a.userUseCase.GetByEmail(ctx, claims.Email)
		if err != nil {
			return nil, domain.ErrInvalidAuthToken
		}
		return &domain.Identity{
			Subject: domain.SubjectUser,
			User:    user,
		}, nil
	}

	return &domain.Identity{
		Subject:   domain.SubjectAPIKey,
		KeyHash:   claims.KeyHash,
		ProjectID: claims.ProjectID,
		Scopes:    claims.Scopes,
	}, nil
}

// AuthenticateUserCredentials handles the direct credential path. It grants
// no partial success: a valid password for a non-SUPERADMIN user fails the
// same way as a bad password.
func (a *authUseCase) AuthenticateUserCredentials(
	ctx context.Context,
	email, password string,
) (*domain.Identity, error) {
	user, err := a.userUseCase.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidAuthToken
	}

	if !a.userUseCase.VerifyPassword(user, password) {
		return nil, domain.ErrInvalidAuthToken
	}

	if user.Type != userDomain.UserTypeSuperAdmin {
		return nil, domain.ErrInvalidAuthToken
	}

	return &domain.Identity{
		Subject: domain.SubjectUser,
		User:    user,
	}, nil
}

// IssueTokenFromAPIKey exchanges a valid raw API key for a delegated session
// token carrying the key's hash, project, and scopes.
func (a *authUseCase) IssueTokenFromAPIKey(ctx context.Context, rawKey string) (string, error) {
	apiKey, err := a.apiKeyUseCase.Validate(ctx, rawKey)
	if err != nil {
		return "", domain.ErrInvalidAuthToken
	}

	return a.tokenService.CreateFromProjectInfo(apiKey.Hash, apiKey.ProjectID, apiKey.Scopes)
}

// IssueTokenFromUserCredentials exchanges SUPERADMIN credentials for a user
// session token.
func (a *authUseCase) IssueTokenFromUserCredentials(
	ctx context.Context,
	email, password string,
) (string, error) {
	identity, err := a.AuthenticateUserCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}

	return a.tokenService.CreateFromUserEmail(identity.User.Email)
}

// AuthorizeProject resolves the effective project for the request. With an
// explicit id the identity's access is checked directly; without one the
// project bound to the identity's API key is used, and its absence is an
// authentication-level failure rather than an authorization one.
func (a *authUseCase) AuthorizeProject(
	ctx context.Context,
	identity *domain.Identity,
	requested *int64,
) (int64, error) {
	if identity == nil {
		return 0, domain.ErrInvalidAuthToken
	}

	if requested != nil {
		if !identity.HasProjectAccess(*requested) {
			return 0, domain.ErrProjectAccessDenied
		}
		return *requested, nil
	}

	if identity.ProjectID == nil {
		return 0, domain.ErrAPIKeyMissing
	}
	return *identity.ProjectID, nil
}
