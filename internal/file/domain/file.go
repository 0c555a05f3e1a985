// Package domain defines the file storage domain models: providers, buckets,
// and file records. File payloads live in the external object store; only
// metadata is kept here.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/errors"
)

// ProviderKind identifies the backing object store for a file provider.
type ProviderKind string

const (
	// ProviderKindS3 is an Amazon S3 compatible store.
	ProviderKindS3 ProviderKind = "s3"
	// ProviderKindGCS is a Google Cloud Storage store.
	ProviderKindGCS ProviderKind = "gcs"
	// ProviderKindLocal is a local filesystem store.
	ProviderKindLocal ProviderKind = "local"
)

// Valid reports whether the provider kind is one of the known values.
func (k ProviderKind) Valid() bool {
	switch k {
	case ProviderKindS3, ProviderKindGCS, ProviderKindLocal:
		return true
	}
	return false
}

// FileProvider represents a configured object store backend.
type FileProvider struct {
	ID        int64
	Name      string
	Kind      ProviderKind
	Config    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FileBucket represents a named container within a provider, scoped to a project.
type FileBucket struct {
	ID         int64
	Name       string
	ProviderID int64
	ProjectID  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// File represents a stored file's metadata.
type File struct {
	ID        uuid.UUID
	Name      string
	BucketID  int64
	Size      int64
	MimeType  string
	ProjectID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// File-storage-specific error definitions.
var (
	// ErrFileProviderNotFound indicates the file provider does not exist.
	ErrFileProviderNotFound = errors.Wrap(errors.ErrNotFound, "file provider not found")

	// ErrFileProviderAlreadyExists indicates a provider with the same name already exists.
	ErrFileProviderAlreadyExists = errors.Wrap(errors.ErrConflict, "file provider already exists")

	// ErrInvalidProviderKind indicates the provider kind is not one of the known values.
	ErrInvalidProviderKind = errors.Wrap(errors.ErrInvalidInput, "invalid provider kind")

	// ErrFileBucketNotFound indicates the file bucket does not exist.
	ErrFileBucketNotFound = errors.Wrap(errors.ErrNotFound, "file bucket not found")

	// ErrFileBucketAlreadyExists indicates a bucket with the same name already exists.
	ErrFileBucketAlreadyExists = errors.Wrap(errors.ErrConflict, "file bucket already exists")

	// ErrFileBucketReference indicates the bucket references a missing provider or project.
	ErrFileBucketReference = errors.Wrap(errors.ErrFailedPrecondition, "referenced provider or project does not exist")

	// ErrFileNotFound indicates the file record does not exist.
	ErrFileNotFound = errors.Wrap(errors.ErrNotFound, "file not found")

	// ErrFileReference indicates the file references a missing bucket or project.
	ErrFileReference = errors.Wrap(errors.ErrFailedPrecondition, "referenced bucket or project does not exist")
)
