package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
)

type mockFileProviderRepository struct {
	mock.Mock
}

func (m *mockFileProviderRepository) Create(ctx context.Context, provider *domain.FileProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *mockFileProviderRepository) GetByID(ctx context.Context, id int64) (*domain.FileProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileProvider), args.Error(1)
}

func (m *mockFileProviderRepository) Update(ctx context.Context, provider *domain.FileProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *mockFileProviderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFileProviderRepository) List(ctx context.Context, offset, limit int) ([]*domain.FileProvider, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FileProvider), args.Error(1)
}

type mockFileBucketRepository struct {
	mock.Mock
}

func (m *mockFileBucketRepository) Create(ctx context.Context, bucket *domain.FileBucket) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *mockFileBucketRepository) GetByID(ctx context.Context, id int64) (*domain.FileBucket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileBucket), args.Error(1)
}

func (m *mockFileBucketRepository) Update(ctx context.Context, bucket *domain.FileBucket) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *mockFileBucketRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFileBucketRepository) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.FileBucket, error) {
	args := m.Called(ctx, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FileBucket), args.Error(1)
}

type mockFileRepository struct {
	mock.Mock
}

func (m *mockFileRepository) Create(ctx context.Context, file *domain.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *mockFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileRepository) Update(ctx context.Context, file *domain.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *mockFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFileRepository) ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.File, error) {
	args := m.Called(ctx, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.File), args.Error(1)
}

func TestFileProviderUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateProvider", func(t *testing.T) {
		mockRepo := &mockFileProviderRepository{}
		useCase := NewFileProviderUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.FileProvider) bool {
			return p.Name == "primary-s3" && p.Kind == domain.ProviderKindS3
		})).Return(nil)

		provider, err := useCase.Create(ctx, &domain.FileProvider{
			Name: "primary-s3",
			Kind: domain.ProviderKindS3,
		})

		require.NoError(t, err)
		assert.Equal(t, "primary-s3", provider.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_InvalidProviderKind", func(t *testing.T) {
		mockRepo := &mockFileProviderRepository{}
		useCase := NewFileProviderUseCase(mockRepo)

		provider, err := useCase.Create(ctx, &domain.FileProvider{
			Name: "primary",
			Kind: "ftp",
		})

		assert.Nil(t, provider)
		assert.ErrorIs(t, err, domain.ErrInvalidProviderKind)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		mockRepo := &mockFileProviderRepository{}
		useCase := NewFileProviderUseCase(mockRepo)

		provider, err := useCase.Create(ctx, &domain.FileProvider{Kind: domain.ProviderKindLocal})

		assert.Nil(t, provider)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		mockRepo := &mockFileProviderRepository{}
		useCase := NewFileProviderUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrFileProviderAlreadyExists)

		provider, err := useCase.Create(ctx, &domain.FileProvider{
			Name: "primary-s3",
			Kind: domain.ProviderKindS3,
		})

		assert.Nil(t, provider)
		assert.ErrorIs(t, err, domain.ErrFileProviderAlreadyExists)
	})
}

func TestFileBucketUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateBucket", func(t *testing.T) {
		mockRepo := &mockFileBucketRepository{}
		useCase := NewFileBucketUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.FileBucket) bool {
			return b.Name == "uploads" && b.ProviderID == 1 && b.ProjectID == 7
		})).Return(nil)

		bucket, err := useCase.Create(ctx, &domain.FileBucket{
			Name:       "uploads",
			ProviderID: 1,
			ProjectID:  7,
		})

		require.NoError(t, err)
		assert.Equal(t, "uploads", bucket.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_MissingProvider", func(t *testing.T) {
		mockRepo := &mockFileBucketRepository{}
		useCase := NewFileBucketUseCase(mockRepo)

		bucket, err := useCase.Create(ctx, &domain.FileBucket{Name: "uploads", ProjectID: 7})

		assert.Nil(t, bucket)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_UnknownReference", func(t *testing.T) {
		mockRepo := &mockFileBucketRepository{}
		useCase := NewFileBucketUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrFileBucketReference)

		bucket, err := useCase.Create(ctx, &domain.FileBucket{
			Name:       "uploads",
			ProviderID: 99,
			ProjectID:  7,
		})

		assert.Nil(t, bucket)
		assert.ErrorIs(t, err, domain.ErrFileBucketReference)
	})
}

func TestFileBucketUseCase_ListByProject(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockFileBucketRepository{}
	useCase := NewFileBucketUseCase(mockRepo)

	buckets := []*domain.FileBucket{
		{ID: 1, Name: "uploads", ProjectID: 7},
		{ID: 2, Name: "exports", ProjectID: 7},
	}
	mockRepo.On("ListByProject", ctx, int64(7), 0, 10).Return(buckets, nil)

	got, err := useCase.ListByProject(ctx, 7, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, buckets, got)
}

func TestFileUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GeneratesID", func(t *testing.T) {
		mockRepo := &mockFileRepository{}
		useCase := NewFileUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.File) bool {
			return f.ID != uuid.Nil && f.Name == "report.pdf"
		})).Return(nil)

		file, err := useCase.Create(ctx, &domain.File{
			Name:      "report.pdf",
			BucketID:  1,
			ProjectID: 7,
			Size:      1024,
			MimeType:  "application/pdf",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, file.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NegativeSize", func(t *testing.T) {
		mockRepo := &mockFileRepository{}
		useCase := NewFileUseCase(mockRepo)

		file, err := useCase.Create(ctx, &domain.File{
			Name:      "report.pdf",
			BucketID:  1,
			ProjectID: 7,
			Size:      -1,
		})

		assert.Nil(t, file)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_MissingBucket", func(t *testing.T) {
		mockRepo := &mockFileRepository{}
		useCase := NewFileUseCase(mockRepo)

		file, err := useCase.Create(ctx, &domain.File{Name: "report.pdf", ProjectID: 7})

		assert.Nil(t, file)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestFileUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Update", func(t *testing.T) {
		mockRepo := &mockFileRepository{}
		useCase := NewFileUseCase(mockRepo)

		id := uuid.Must(uuid.NewV7())
		existing := &domain.File{ID: id, Name: "report.pdf", BucketID: 1, ProjectID: 7, Size: 1024}
		mockRepo.On("GetByID", ctx, id).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(f *domain.File) bool {
			return f.ID == id && f.Name == "report-v2.pdf" && f.Size == 2048
		})).Return(nil)

		file, err := useCase.Update(ctx, id, &domain.File{
			Name:      "report-v2.pdf",
			BucketID:  1,
			ProjectID: 7,
			Size:      2048,
			MimeType:  "application/pdf",
		})

		require.NoError(t, err)
		assert.Equal(t, "report-v2.pdf", file.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockFileRepository{}
		useCase := NewFileUseCase(mockRepo)

		id := uuid.Must(uuid.NewV7())
		mockRepo.On("GetByID", ctx, id).Return(nil, domain.ErrFileNotFound)

		file, err := useCase.Update(ctx, id, &domain.File{
			Name:      "report.pdf",
			BucketID:  1,
			ProjectID: 7,
		})

		assert.Nil(t, file)
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}
