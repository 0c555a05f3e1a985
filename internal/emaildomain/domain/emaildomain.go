// Package domain defines the email domain models. Verification against the
// third-party mail API happens outside this service; Verified is recorded
// state, not behavior.
package domain

import (
	"time"

	"github.com/allisson/identity/internal/errors"
)

// EmailDomain represents a sending domain registered to a project.
type EmailDomain struct {
	ID        int64
	Domain    string
	ProjectID int64
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Email-domain-specific error definitions.
var (
	// ErrEmailDomainNotFound indicates the email domain does not exist.
	ErrEmailDomainNotFound = errors.Wrap(errors.ErrNotFound, "email domain not found")

	// ErrEmailDomainAlreadyExists indicates the domain is already registered to the project.
	ErrEmailDomainAlreadyExists = errors.Wrap(errors.ErrConflict, "email domain already exists")

	// ErrEmailDomainReference indicates the referenced project does not exist.
	ErrEmailDomainReference = errors.Wrap(errors.ErrFailedPrecondition, "referenced project does not exist")
)
