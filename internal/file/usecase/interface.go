// Package usecase implements the file storage business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/file/domain"
)

// FileProviderRepository defines persistence operations for file providers.
type FileProviderRepository interface {
	Create(ctx context.Context, provider *domain.FileProvider) error
	GetByID(ctx context.Context, id int64) (*domain.FileProvider, error)
	Update(ctx context.Context, provider *domain.FileProvider) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.FileProvider, error)
}

// FileBucketRepository defines persistence operations for file buckets.
type FileBucketRepository interface {
	Create(ctx context.Context, bucket *domain.FileBucket) error
	GetByID(ctx context.Context, id int64) (*domain.FileBucket, error)
	Update(ctx context.Context, bucket *domain.FileBucket) error
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.FileBucket, error)
}

// FileRepository defines persistence operations for file records.
type FileRepository interface {
	Create(ctx context.Context, file *domain.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error)
	Update(ctx context.Context, file *domain.File) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.File, error)
}

// FileProviderUseCase defines the file provider business operations.
type FileProviderUseCase interface {
	Create(ctx context.Context, provider *domain.FileProvider) (*domain.FileProvider, error)
	Get(ctx context.Context, id int64) (*domain.FileProvider, error)
	Update(ctx context.Context, id int64, provider *domain.FileProvider) (*domain.FileProvider, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.FileProvider, error)
}

// FileBucketUseCase defines the file bucket business operations.
type FileBucketUseCase interface {
	Create(ctx context.Context, bucket *domain.FileBucket) (*domain.FileBucket, error)
	Get(ctx context.Context, id int64) (*domain.FileBucket, error)
	Update(ctx context.Context, id int64, bucket *domain.FileBucket) (*domain.FileBucket, error)
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.FileBucket, error)
}

// FileUseCase defines the file record business operations.
type FileUseCase interface {
	Create(ctx context.Context, file *domain.File) (*domain.File, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.File, error)
	Update(ctx context.Context, id uuid.UUID, file *domain.File) (*domain.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.File, error)
}
