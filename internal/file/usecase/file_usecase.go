package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
	appValidation "github.com/allisson/identity/internal/validation"
)

// fileProviderUseCase implements FileProviderUseCase.
type fileProviderUseCase struct {
	providerRepo FileProviderRepository
}

// NewFileProviderUseCase creates a new FileProviderUseCase.
func NewFileProviderUseCase(providerRepo FileProviderRepository) FileProviderUseCase {
	return &fileProviderUseCase{providerRepo: providerRepo}
}

func (f *fileProviderUseCase) validate(provider *domain.FileProvider) error {
	err := validation.Errors{
		"name": validation.Validate(provider.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if !provider.Kind.Valid() {
		return domain.ErrInvalidProviderKind
	}
	return nil
}

// Create registers a new file provider.
func (f *fileProviderUseCase) Create(
	ctx context.Context,
	provider *domain.FileProvider,
) (*domain.FileProvider, error) {
	if err := f.validate(provider); err != nil {
		return nil, err
	}

	provider.Name = strings.TrimSpace(provider.Name)
	provider.CreatedAt = time.Now().UTC()
	provider.UpdatedAt = time.Now().UTC()

	if err := f.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// Get retrieves a file provider by id.
func (f *fileProviderUseCase) Get(ctx context.Context, id int64) (*domain.FileProvider, error) {
	return f.providerRepo.GetByID(ctx, id)
}

// Update modifies an existing file provider.
func (f *fileProviderUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.FileProvider,
) (*domain.FileProvider, error) {
	if err := f.validate(input); err != nil {
		return nil, err
	}

	provider, err := f.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	provider.Name = strings.TrimSpace(input.Name)
	provider.Kind = input.Kind
	provider.Config = input.Config
	provider.UpdatedAt = time.Now().UTC()

	if err := f.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// Delete removes a file provider.
func (f *fileProviderUseCase) Delete(ctx context.Context, id int64) error {
	return f.providerRepo.Delete(ctx, id)
}

// List retrieves file providers with pagination.
func (f *fileProviderUseCase) List(ctx context.Context, offset, limit int) ([]*domain.FileProvider, error) {
	return f.providerRepo.List(ctx, offset, limit)
}

// fileBucketUseCase implements FileBucketUseCase.
type fileBucketUseCase struct {
	bucketRepo FileBucketRepository
}

// NewFileBucketUseCase creates a new FileBucketUseCase.
func NewFileBucketUseCase(bucketRepo FileBucketRepository) FileBucketUseCase {
	return &fileBucketUseCase{bucketRepo: bucketRepo}
}

func (f *fileBucketUseCase) validate(bucket *domain.FileBucket) error {
	err := validation.Errors{
		"name": validation.Validate(bucket.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"provider_id": validation.Validate(bucket.ProviderID,
			validation.Required.Error("provider_id is required"),
			validation.Min(int64(1)).Error("provider_id must be a positive integer"),
		),
		"project_id": validation.Validate(bucket.ProjectID,
			validation.Required.Error("project_id is required"),
			validation.Min(int64(1)).Error("project_id must be a positive integer"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	return nil
}

// Create registers a new file bucket.
func (f *fileBucketUseCase) Create(
	ctx context.Context,
	bucket *domain.FileBucket,
) (*domain.FileBucket, error) {
	if err := f.validate(bucket); err != nil {
		return nil, err
	}

	bucket.Name = strings.TrimSpace(bucket.Name)
	bucket.CreatedAt = time.Now().UTC()
	bucket.UpdatedAt = time.Now().UTC()

	if err := f.bucketRepo.Create(ctx, bucket); err != nil {
		return nil, err
	}
	return bucket, nil
}

// Get retrieves a file bucket by id.
func (f *fileBucketUseCase) Get(ctx context.Context, id int64) (*domain.FileBucket, error) {
	return f.bucketRepo.GetByID(ctx, id)
}

// Update modifies an existing file bucket.
func (f *fileBucketUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.FileBucket,
) (*domain.FileBucket, error) {
	if err := f.validate(input); err != nil {
		return nil, err
	}

	bucket, err := f.bucketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bucket.Name = strings.TrimSpace(input.Name)
	bucket.ProviderID = input.ProviderID
	bucket.ProjectID = input.ProjectID
	bucket.UpdatedAt = time.Now().UTC()

	if err := f.bucketRepo.Update(ctx, bucket); err != nil {
		return nil, err
	}
	return bucket, nil
}

// Delete removes a file bucket.
func (f *fileBucketUseCase) Delete(ctx context.Context, id int64) error {
	return f.bucketRepo.Delete(ctx, id)
}

// ListByProject retrieves a project's file buckets with pagination.
func (f *fileBucketUseCase) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.FileBucket, error) {
	return f.bucketRepo.ListByProject(ctx, projectID, offset, limit)
}

// fileUseCase implements FileUseCase.
type fileUseCase struct {
	fileRepo FileRepository
}

// NewFileUseCase creates a new FileUseCase.
func NewFileUseCase(fileRepo FileRepository) FileUseCase {
	return &fileUseCase{fileRepo: fileRepo}
}

func (f *fileUseCase) validate(file *domain.File) error {
	err := validation.Errors{
		"name": validation.Validate(file.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"bucket_id": validation.Validate(file.BucketID,
			validation.Required.Error("bucket_id is required"),
			validation.Min(int64(1)).Error("bucket_id must be a positive integer"),
		),
		"project_id": validation.Validate(file.ProjectID,
			validation.Required.Error("project_id is required"),
			validation.Min(int64(1)).Error("project_id must be a positive integer"),
		),
		"size": validation.Validate(file.Size,
			validation.Min(int64(0)).Error("size must be non-negative"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	return nil
}

// Create registers a new file record with a generated id.
func (f *fileUseCase) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	if err := f.validate(file); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate file id")
	}

	file.ID = id
	file.Name = strings.TrimSpace(file.Name)
	file.CreatedAt = time.Now().UTC()
	file.UpdatedAt = time.Now().UTC()

	if err := f.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// Get retrieves a file record by id.
func (f *fileUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	return f.fileRepo.GetByID(ctx, id)
}

// Update modifies an existing file record.
func (f *fileUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.File,
) (*domain.File, error) {
	if err := f.validate(input); err != nil {
		return nil, err
	}

	file, err := f.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	file.Name = strings.TrimSpace(input.Name)
	file.BucketID = input.BucketID
	file.Size = input.Size
	file.MimeType = input.MimeType
	file.ProjectID = input.ProjectID
	file.UpdatedAt = time.Now().UTC()

	if err := f.fileRepo.Update(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// Delete removes a file record.
func (f *fileUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.fileRepo.Delete(ctx, id)
}

// ListByProject retrieves a project's file records with pagination.
func (f *fileUseCase) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.File, error) {
	return f.fileRepo.ListByProject(ctx, projectID, offset, limit)
}
