// Package domain defines the core user domain entities and types.
package domain

import (
	"slices"
	"time"

	"github.com/allisson/identity/internal/errors"
)

// UserType classifies the level of access a user has.
type UserType string

const (
	// UserTypeSuperAdmin has unrestricted access to every project.
	UserTypeSuperAdmin UserType = "SUPERADMIN"

	// UserTypeAdmin has access to explicitly linked projects only.
	UserTypeAdmin UserType = "ADMIN"

	// UserTypeUser has access to explicitly linked projects only.
	UserTypeUser UserType = "USER"
)

// Valid reports whether the user type is one of the known values.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeSuperAdmin, UserTypeAdmin, UserTypeUser:
		return true
	}
	return false
}

// User represents a user in the system. ProjectIDs holds the ids of projects
// the user is linked to through the project_users table.
type User struct {
	ID         int64
	Name       string
	Email      string
	Password   string // hashed, never plaintext
	Type       UserType
	ProjectIDs []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasProjectAccess reports whether the user may act on the given project.
// SUPERADMIN users implicitly have access to all projects; everyone else is
// limited to their linked-project set.
func (u *User) HasProjectAccess(projectID int64) bool {
	if u.Type == UserTypeSuperAdmin {
		return true
	}
	return slices.Contains(u.ProjectIDs, projectID)
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidUserType indicates the user type is not one of the known values.
	ErrInvalidUserType = errors.Wrap(errors.ErrInvalidInput, "invalid user type")

	// ErrUserProjectLink indicates the user/project link could not be created
	// because the referenced project does not exist.
	ErrUserProjectLink = errors.Wrap(errors.ErrFailedPrecondition, "project does not exist")
)

// CreateUserInput contains the input data for user registration.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Type     UserType
}

// UpdateUserInput contains the mutable fields for updating a user.
// A nil Password leaves the current password unchanged.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password *string
	Type     UserType
}
