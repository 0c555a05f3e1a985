// Package usecase implements business logic orchestration for project operations.
package usecase

import (
	"context"

	"github.com/allisson/identity/internal/project/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.Project, error)
}

// ProjectUseCase defines the project business operations.
type ProjectUseCase interface {
	Create(ctx context.Context, input *domain.CreateProjectInput) (*domain.Project, error)
	// Get resolves a project by exactly one of id or name.
	Get(ctx context.Context, selector domain.Selector) (*domain.Project, error)
	Update(ctx context.Context, id int64, input *domain.UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.Project, error)
}
