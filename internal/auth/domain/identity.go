// Package domain defines the identity model produced by the authentication gate.
// An Identity is reconstructed fresh for every inbound request from the
// presented credential; it is never persisted.
package domain

import (
	"github.com/allisson/identity/internal/errors"
	userDomain "github.com/allisson/identity/internal/user/domain"
)

// SubjectType classifies the kind of caller behind an authenticated request.
type SubjectType string

const (
	// SubjectAnonymous is a request that carried no usable credential.
	SubjectAnonymous SubjectType = "ANONYMOUS"

	// SubjectAPIKey is a caller authenticated by an API key, directly or via
	// a delegated API-key-backed token.
	SubjectAPIKey SubjectType = "API_KEY"

	// SubjectUser is a caller authenticated as a user session.
	SubjectUser SubjectType = "USER"
)

// Identity is the request-scoped result of authentication.
type Identity struct {
	// Subject classifies the caller.
	Subject SubjectType
	// User is set for user subjects.
	User *userDomain.User
	// KeyHash is the stored hash of the API key for API key subjects.
	KeyHash string
	// ProjectID is the project bound to the API key, if any.
	ProjectID *int64
	// Scopes lists the permissions granted to the caller.
	Scopes []string
}

// HasProjectAccess reports whether this identity may act on the given project.
// User subjects defer to the user's type and linked projects; API key subjects
// are limited to the key's bound project.
func (i *Identity) HasProjectAccess(projectID int64) bool {
	switch i.Subject {
	case SubjectUser:
		return i.User != nil && i.User.HasProjectAccess(projectID)
	case SubjectAPIKey:
		return i.ProjectID != nil && *i.ProjectID == projectID
	default:
		return false
	}
}

// Authentication-specific error definitions. The invalid-token error is shared
// by every failure mode on the bearer path so callers cannot tell which
// credential check rejected them.
var (
	// ErrInvalidAuthToken indicates the presented credential failed both the
	// API key and the bearer token checks.
	ErrInvalidAuthToken = errors.Wrap(errors.ErrUnauthorized, "invalid authentication token")

	// ErrAPIKeyMissing indicates no project id was supplied and no API key is
	// bound to the identity to fall back on.
	ErrAPIKeyMissing = errors.Wrap(errors.ErrUnauthorized, "api key missing")

	// ErrProjectAccessDenied indicates an authenticated caller is not
	// permitted to act on the requested project.
	ErrProjectAccessDenied = errors.Wrap(errors.ErrForbidden, "project access denied")
)
