// Package usecase implements the API key business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/apikey/domain"
)

// APIKeyRepository defines persistence operations for API keys.
type APIKeyRepository interface {
	Create(ctx context.Context, apiKey *domain.APIKey) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error)
	GetByHash(ctx context.Context, hash string) (*domain.APIKey, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByHash(ctx context.Context, hash string) error
	DeleteByProject(ctx context.Context, projectID int64) (int64, error)
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.APIKey, error)
}

// APIKeyUseCase defines the API key business operations.
type APIKeyUseCase interface {
	// Issue creates a new API key. The returned output carries the raw key,
	// which is never stored and cannot be retrieved again.
	Issue(ctx context.Context, input *domain.CreateAPIKeyInput) (*domain.IssueAPIKeyOutput, error)

	// Validate checks a raw key against the store. Failures are reported with
	// a single generic error regardless of the underlying cause.
	Validate(ctx context.Context, rawKey string) (*domain.APIKey, error)

	// Get retrieves an API key by id.
	Get(ctx context.Context, id uuid.UUID) (*domain.APIKey, error)

	// Revoke removes an API key by id.
	Revoke(ctx context.Context, id uuid.UUID) error

	// RevokeByKey removes an API key given its raw key material.
	RevokeByKey(ctx context.Context, rawKey string) error

	// RevokeAllForProject removes every key bound to a project and returns
	// the number of keys removed.
	RevokeAllForProject(ctx context.Context, projectID int64) (int64, error)

	// List retrieves the keys bound to a project with pagination.
	List(ctx context.Context, projectID int64, offset, limit int) ([]*domain.APIKey, error)
}
