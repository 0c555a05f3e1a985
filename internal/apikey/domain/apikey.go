// Package domain defines the core domain models and errors for API keys.
// API keys are long-lived credentials bound to a single project. The raw key
// is returned exactly once at issuance; only a keyed hash is stored, so a
// lost key can never be recovered, only revoked and reissued.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/errors"
)

// APIKey represents an issued API key. The raw key material is never
// persisted; Hash is the deterministic keyed digest used for lookups.
type APIKey struct {
	// ID is the unique identifier for this key.
	ID uuid.UUID
	// Hash is the keyed Argon2id digest of the raw key, hex-encoded.
	Hash string
	// Environment names the deployment environment the key targets.
	Environment string
	// Description is a free-form operator note.
	Description string
	// Scopes lists the permissions granted to bearers of this key.
	Scopes []string
	// ProjectID is the project this key is bound to.
	ProjectID int64
	// CreatedAt is the UTC timestamp when the key was issued.
	CreatedAt time.Time
}

// CreateAPIKeyInput holds the data required to issue a new API key.
type CreateAPIKeyInput struct {
	Environment string
	Description string
	Scopes      []string
	ProjectID   int64
}

// IssueAPIKeyOutput carries the stored key together with the raw key
// material. RawKey is only available here; it cannot be retrieved later.
type IssueAPIKeyOutput struct {
	APIKey *APIKey
	RawKey string
}

// API-key-specific error definitions.
var (
	// ErrAPIKeyNotFound indicates the API key does not exist.
	ErrAPIKeyNotFound = errors.Wrap(errors.ErrNotFound, "api key not found")

	// ErrAPIKeyAlreadyExists indicates a key with the same hash already exists.
	ErrAPIKeyAlreadyExists = errors.Wrap(errors.ErrConflict, "api key already exists")

	// ErrAPIKeyInvalid indicates the presented key did not match any stored key.
	// Deliberately generic so callers cannot distinguish unknown from revoked.
	ErrAPIKeyInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid api key")

	// ErrAPIKeyProjectLink indicates the referenced project does not exist.
	ErrAPIKeyProjectLink = errors.Wrap(errors.ErrFailedPrecondition, "project does not exist")
)
