// Package domain defines the analytics domain models: per-project analytics
// configuration and named request counters.
package domain

import (
	"time"

	"github.com/allisson/identity/internal/errors"
)

// AnalyticsConfig holds a project's analytics provider settings. Each project
// has at most one configuration.
type AnalyticsConfig struct {
	ID        int64
	ProjectID int64
	Provider  string
	SiteID    string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Counter is a named, project-scoped monotonic counter.
type Counter struct {
	Name      string
	ProjectID int64
	Value     int64
}

// Analytics-specific error definitions.
var (
	// ErrAnalyticsConfigNotFound indicates the analytics config does not exist.
	ErrAnalyticsConfigNotFound = errors.Wrap(errors.ErrNotFound, "analytics config not found")

	// ErrAnalyticsConfigAlreadyExists indicates the project already has a config.
	ErrAnalyticsConfigAlreadyExists = errors.Wrap(errors.ErrConflict, "analytics config already exists")

	// ErrAnalyticsConfigReference indicates the referenced project does not exist.
	ErrAnalyticsConfigReference = errors.Wrap(errors.ErrFailedPrecondition, "referenced project does not exist")
)
