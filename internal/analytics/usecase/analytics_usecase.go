package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/identity/internal/analytics/domain"
	appValidation "github.com/allisson/identity/internal/validation"
)

// analyticsConfigUseCase implements AnalyticsConfigUseCase.
type analyticsConfigUseCase struct {
	configRepo AnalyticsConfigRepository
}

// NewAnalyticsConfigUseCase creates a new AnalyticsConfigUseCase.
func NewAnalyticsConfigUseCase(configRepo AnalyticsConfigRepository) AnalyticsConfigUseCase {
	return &analyticsConfigUseCase{configRepo: configRepo}
}

func (a *analyticsConfigUseCase) validate(config *domain.AnalyticsConfig) error {
	err := validation.Errors{
		"project_id": validation.Validate(config.ProjectID,
			validation.Required.Error("project_id is required"),
			validation.Min(int64(1)).Error("project_id must be a positive integer"),
		),
		"provider": validation.Validate(config.Provider,
			validation.Required.Error("provider is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("provider must be between 1 and 100 characters"),
		),
		"site_id": validation.Validate(config.SiteID,
			validation.Length(0, 255).Error("site_id must be at most 255 characters"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	return nil
}

// Create registers a new analytics config for a project.
func (a *analyticsConfigUseCase) Create(
	ctx context.Context,
	config *domain.AnalyticsConfig,
) (*domain.AnalyticsConfig, error) {
	if err := a.validate(config); err != nil {
		return nil, err
	}

	config.Provider = strings.TrimSpace(config.Provider)
	config.CreatedAt = time.Now().UTC()
	config.UpdatedAt = time.Now().UTC()

	if err := a.configRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get retrieves an analytics config by id.
func (a *analyticsConfigUseCase) Get(ctx context.Context, id int64) (*domain.AnalyticsConfig, error) {
	return a.configRepo.GetByID(ctx, id)
}

// GetByProject retrieves the analytics config for a project.
func (a *analyticsConfigUseCase) GetByProject(
	ctx context.Context,
	projectID int64,
) (*domain.AnalyticsConfig, error) {
	return a.configRepo.GetByProject(ctx, projectID)
}

// Update modifies an existing analytics config. The project binding is immutable.
func (a *analyticsConfigUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.AnalyticsConfig,
) (*domain.AnalyticsConfig, error) {
	config, err := a.configRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ProjectID = config.ProjectID
	if err := a.validate(input); err != nil {
		return nil, err
	}

	config.Provider = strings.TrimSpace(input.Provider)
	config.SiteID = input.SiteID
	config.Enabled = input.Enabled
	config.UpdatedAt = time.Now().UTC()

	if err := a.configRepo.Update(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Delete removes an analytics config.
func (a *analyticsConfigUseCase) Delete(ctx context.Context, id int64) error {
	return a.configRepo.Delete(ctx, id)
}

// List retrieves analytics configs with pagination.
func (a *analyticsConfigUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.AnalyticsConfig, error) {
	return a.configRepo.List(ctx, offset, limit)
}

// counterUseCase implements CounterUseCase.
type counterUseCase struct {
	counterRepo CounterRepository
}

// NewCounterUseCase creates a new CounterUseCase.
func NewCounterUseCase(counterRepo CounterRepository) CounterUseCase {
	return &counterUseCase{counterRepo: counterRepo}
}

func validateCounterName(name string) error {
	return validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("name must be between 1 and 100 characters"),
		),
	}.Filter()
}

// Increment adds one to a project-scoped counter and returns the new value.
func (c *counterUseCase) Increment(ctx context.Context, projectID int64, name string) (*domain.Counter, error) {
	if err := validateCounterName(name); err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	value, err := c.counterRepo.Increment(ctx, projectID, name)
	if err != nil {
		return nil, err
	}

	return &domain.Counter{Name: name, ProjectID: projectID, Value: value}, nil
}

// Get retrieves a project-scoped counter. Missing counters read as zero.
func (c *counterUseCase) Get(ctx context.Context, projectID int64, name string) (*domain.Counter, error) {
	if err := validateCounterName(name); err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	value, err := c.counterRepo.Get(ctx, projectID, name)
	if err != nil {
		return nil, err
	}

	return &domain.Counter{Name: name, ProjectID: projectID, Value: value}, nil
}

// Reset sets a project-scoped counter back to zero.
func (c *counterUseCase) Reset(ctx context.Context, projectID int64, name string) error {
	if err := validateCounterName(name); err != nil {
		return appValidation.WrapValidationError(err)
	}
	return c.counterRepo.Reset(ctx, projectID, name)
}
