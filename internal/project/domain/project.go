// Package domain defines the project domain entities and business rules.
package domain

import (
	"time"

	"github.com/allisson/identity/internal/errors"
)

// Project represents a tenant boundary: every API key and most resources are
// scoped to exactly one project.
type Project struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for project operations.
var (
	// ErrProjectNotFound indicates the requested project does not exist.
	ErrProjectNotFound = errors.Wrap(errors.ErrNotFound, "project not found")

	// ErrProjectAlreadyExists indicates a project with the same name already exists.
	ErrProjectAlreadyExists = errors.Wrap(errors.ErrConflict, "project already exists")

	// ErrProjectSelector indicates a lookup supplied both or neither of id and name.
	ErrProjectSelector = errors.Wrap(errors.ErrInvalidInput, "exactly one of project id or name must be provided")
)

// Selector identifies a project by exactly one of id or name.
// Supplying both or neither is a validation error.
type Selector struct {
	ID   *int64
	Name string
}

// Validate enforces the exactly-one-of precondition.
func (s Selector) Validate() error {
	hasID := s.ID != nil
	hasName := s.Name != ""
	if hasID == hasName {
		return ErrProjectSelector
	}
	return nil
}

// CreateProjectInput contains the parameters for creating a new project.
type CreateProjectInput struct {
	Name string
}

// UpdateProjectInput contains the mutable fields for updating a project.
type UpdateProjectInput struct {
	Name string
}
