package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/identity/internal/project/domain"
	appValidation "github.com/allisson/identity/internal/validation"
)

// projectUseCase implements ProjectUseCase.
type projectUseCase struct {
	projectRepo ProjectRepository
}

// NewProjectUseCase creates a new ProjectUseCase with the provided dependencies.
func NewProjectUseCase(projectRepo ProjectRepository) ProjectUseCase {
	return &projectUseCase{projectRepo: projectRepo}
}

func validateProjectName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error("name is required"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
	)
	return appValidation.WrapValidationError(err)
}

// Create persists a new project. Project names are unique; a duplicate name
// returns ErrProjectAlreadyExists.
func (p *projectUseCase) Create(
	ctx context.Context,
	input *domain.CreateProjectInput,
) (*domain.Project, error) {
	if err := validateProjectName(input.Name); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := p.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get resolves a project by exactly one of id or name.
// Supplying both or neither fails with ErrProjectSelector.
func (p *projectUseCase) Get(ctx context.Context, selector domain.Selector) (*domain.Project, error) {
	if err := selector.Validate(); err != nil {
		return nil, err
	}

	if selector.ID != nil {
		return p.projectRepo.GetByID(ctx, *selector.ID)
	}
	return p.projectRepo.GetByName(ctx, selector.Name)
}

// Update renames an existing project.
func (p *projectUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.UpdateProjectInput,
) (*domain.Project, error) {
	if err := validateProjectName(input.Name); err != nil {
		return nil, err
	}

	project, err := p.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = strings.TrimSpace(input.Name)
	project.UpdatedAt = time.Now().UTC()

	if err := p.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project. Deletion is physical; associated API keys and
// user links are removed by the store's cascading constraints.
func (p *projectUseCase) Delete(ctx context.Context, id int64) error {
	return p.projectRepo.Delete(ctx, id)
}

// List retrieves projects ordered by id with pagination support.
func (p *projectUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Project, error) {
	return p.projectRepo.List(ctx, offset, limit)
}
