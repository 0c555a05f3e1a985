// Package usecase implements the analytics business logic.
package usecase

import (
	"context"

	"github.com/allisson/identity/internal/analytics/domain"
)

// AnalyticsConfigRepository defines persistence operations for analytics configs.
type AnalyticsConfigRepository interface {
	Create(ctx context.Context, config *domain.AnalyticsConfig) error
	GetByID(ctx context.Context, id int64) (*domain.AnalyticsConfig, error)
	GetByProject(ctx context.Context, projectID int64) (*domain.AnalyticsConfig, error)
	Update(ctx context.Context, config *domain.AnalyticsConfig) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.AnalyticsConfig, error)
}

// CounterRepository defines operations on project-scoped counters.
type CounterRepository interface {
	// Increment adds one to the counter and returns the new value.
	Increment(ctx context.Context, projectID int64, name string) (int64, error)
	// Get returns the current counter value; a counter that was never
	// incremented reads as zero.
	Get(ctx context.Context, projectID int64, name string) (int64, error)
	// Reset sets the counter back to zero.
	Reset(ctx context.Context, projectID int64, name string) error
}

// AnalyticsConfigUseCase defines the analytics config business operations.
type AnalyticsConfigUseCase interface {
	Create(ctx context.Context, config *domain.AnalyticsConfig) (*domain.AnalyticsConfig, error)
	Get(ctx context.Context, id int64) (*domain.AnalyticsConfig, error)
	GetByProject(ctx context.Context, projectID int64) (*domain.AnalyticsConfig, error)
	Update(ctx context.Context, id int64, config *domain.AnalyticsConfig) (*domain.AnalyticsConfig, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.AnalyticsConfig, error)
}

// CounterUseCase defines the counter business operations.
type CounterUseCase interface {
	Increment(ctx context.Context, projectID int64, name string) (*domain.Counter, error)
	Get(ctx context.Context, projectID int64, name string) (*domain.Counter, error)
	Reset(ctx context.Context, projectID int64, name string) error
}
