package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/identity/internal/apikey/domain"
	"github.com/allisson/identity/internal/apikey/service"
	apperrors "github.com/allisson/identity/internal/errors"
	appValidation "github.com/allisson/identity/internal/validation"
)

// apiKeyUseCase implements APIKeyUseCase.
type apiKeyUseCase struct {
	apiKeyRepo APIKeyRepository
	keyService service.KeyService
}

// NewAPIKeyUseCase creates a new APIKeyUseCase with the provided dependencies.
func NewAPIKeyUseCase(apiKeyRepo APIKeyRepository, keyService service.KeyService) APIKeyUseCase {
	return &apiKeyUseCase{
		apiKeyRepo: apiKeyRepo,
		keyService: keyService,
	}
}

func (a *apiKeyUseCase) validateCreateAPIKeyInput(input *domain.CreateAPIKeyInput) error {
	err := validation.Errors{
		"environment": validation.Validate(input.Environment,
			validation.Required.Error("environment is required"),
			appValidation.NotBlank,
			validation.Length(1, 50).Error("environment must be between 1 and 50 characters"),
		),
		"description": validation.Validate(input.Description,
			validation.Length(0, 255).Error("description must be at most 255 characters"),
		),
		"project_id": validation.Validate(input.ProjectID,
			validation.Required.Error("project_id is required"),
			validation.Min(int64(1)).Error("project_id must be a positive integer"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	for _, scope := range input.Scopes {
		if err := validation.Validate(scope, validation.Required, appValidation.ScopeName); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidInput, "scopes: "+err.Error())
		}
	}
	return nil
}

// Issue creates a new API key bound to a project. The raw key in the output
// is the only copy that will ever exist.
func (a *apiKeyUseCase) Issue(
	ctx context.Context,
	input *domain.CreateAPIKeyInput,
) (*domain.IssueAPIKeyOutput, error) {
	if err := a.validateCreateAPIKeyInput(input); err != nil {
		return nil, err
	}

	rawKey, keyHash, err := a.keyService.GenerateKey()
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate api key id")
	}

	scopes := input.Scopes
	if scopes == nil {
		scopes = []string{}
	}

	apiKey := &domain.APIKey{
		ID:          id,
		Hash:        keyHash,
		Environment: strings.TrimSpace(input.Environment),
		Description: strings.TrimSpace(input.Description),
		Scopes:      scopes,
		ProjectID:   input.ProjectID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := a.apiKeyRepo.Create(ctx, apiKey); err != nil {
		return nil, err
	}

	return &domain.IssueAPIKeyOutput{APIKey: apiKey, RawKey: rawKey}, nil
}

// Validate recomputes the deterministic hash of the raw key and looks it up.
// Every failure collapses into the same generic error so callers cannot
// probe for key existence.
func (a *apiKeyUseCase) Validate(ctx context.Context, rawKey string) (*domain.APIKey, error) {
	if rawKey == "" {
		return nil, domain.ErrAPIKeyInvalid
	}

	apiKey, err := a.apiKeyRepo.GetByHash(ctx, a.keyService.HashKey(rawKey))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrAPIKeyInvalid
		}
		return nil, err
	}
	return apiKey, nil
}

// Get retrieves an API key by id.
func (a *apiKeyUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	return a.apiKeyRepo.GetByID(ctx, id)
}

// Revoke removes an API key by id.
func (a *apiKeyUseCase) Revoke(ctx context.Context, id uuid.UUID) error {
	return a.apiKeyRepo.Delete(ctx, id)
}

// RevokeByKey removes an API key given its raw key material.
func (a *apiKeyUseCase) RevokeByKey(ctx context.Context, rawKey string) error {
	if rawKey == "" {
		return domain.ErrAPIKeyNotFound
	}
	return a.apiKeyRepo.DeleteByHash(ctx, a.keyService.HashKey(rawKey))
}

// RevokeAllForProject removes every key bound to a project.
func (a *apiKeyUseCase) RevokeAllForProject(ctx context.Context, projectID int64) (int64, error) {
	return a.apiKeyRepo.DeleteByProject(ctx, projectID)
}

// List retrieves the keys bound to a project with pagination.
func (a *apiKeyUseCase) List(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.APIKey, error) {
	return a.apiKeyRepo.ListByProject(ctx, projectID, offset, limit)
}
