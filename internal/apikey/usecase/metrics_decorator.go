package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/apikey/domain"
	"github.com/allisson/identity/internal/metrics"
)

// apiKeyUseCaseWithMetrics decorates APIKeyUseCase with metrics instrumentation.
type apiKeyUseCaseWithMetrics struct {
	next    APIKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewAPIKeyUseCaseWithMetrics wraps an APIKeyUseCase with metrics recording.
func NewAPIKeyUseCaseWithMetrics(useCase APIKeyUseCase, m metrics.BusinessMetrics) APIKeyUseCase {
	return &apiKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *apiKeyUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "apikey", operation, status)
	a.metrics.RecordDuration(ctx, "apikey", operation, time.Since(start), status)
}

// Issue records metrics for API key issuance operations.
func (a *apiKeyUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *domain.CreateAPIKeyInput,
) (*domain.IssueAPIKeyOutput, error) {
	start := time.Now()
	output, err := a.next.Issue(ctx, input)
	a.record(ctx, "issue", start, err)
	return output, err
}

// Validate records metrics for API key validation operations.
func (a *apiKeyUseCaseWithMetrics) Validate(ctx context.Context, rawKey string) (*domain.APIKey, error) {
	start := time.Now()
	apiKey, err := a.next.Validate(ctx, rawKey)
	a.record(ctx, "validate", start, err)
	return apiKey, err
}

// Get records metrics for API key retrieval operations.
func (a *apiKeyUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	start := time.Now()
	apiKey, err := a.next.Get(ctx, id)
	a.record(ctx, "get", start, err)
	return apiKey, err
}

// Revoke records metrics for API key revocation operations.
func (a *apiKeyUseCaseWithMetrics) Revoke(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := a.next.Revoke(ctx, id)
	a.record(ctx, "revoke", start, err)
	return err
}

// RevokeByKey records metrics for raw-key revocation operations.
func (a *apiKeyUseCaseWithMetrics) RevokeByKey(ctx context.Context, rawKey string) error {
	start := time.Now()
	err := a.next.RevokeByKey(ctx, rawKey)
	a.record(ctx, "revoke_by_key", start, err)
	return err
}

// RevokeAllForProject records metrics for project-wide revocation operations.
func (a *apiKeyUseCaseWithMetrics) RevokeAllForProject(
	ctx context.Context,
	projectID int64,
) (int64, error) {
	start := time.Now()
	count, err := a.next.RevokeAllForProject(ctx, projectID)
	a.record(ctx, "revoke_all_for_project", start, err)
	return count, err
}

// List records metrics for API key list operations.
func (a *apiKeyUseCaseWithMetrics) List(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.APIKey, error) {
	start := time.Now()
	apiKeys, err := a.next.List(ctx, projectID, offset, limit)
	a.record(ctx, "list", start, err)
	return apiKeys, err
}
