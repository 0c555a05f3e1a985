package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/project/domain"
)

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProjectRepository) List(ctx context.Context, offset, limit int) ([]*domain.Project, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func TestProjectUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateProject", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Name == "billing" && !p.CreatedAt.IsZero() && !p.UpdatedAt.IsZero()
		})).Return(nil)

		project, err := useCase.Create(ctx, &domain.CreateProjectInput{Name: "billing"})

		require.NoError(t, err)
		assert.Equal(t, "billing", project.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_NameIsTrimmed", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Name == "billing"
		})).Return(nil)

		project, err := useCase.Create(ctx, &domain.CreateProjectInput{Name: "  billing  "})

		require.NoError(t, err)
		assert.Equal(t, "billing", project.Name)
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		project, err := useCase.Create(ctx, &domain.CreateProjectInput{Name: ""})

		assert.Nil(t, project)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		project, err := useCase.Create(ctx, &domain.CreateProjectInput{Name: "   "})

		assert.Nil(t, project)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrProjectAlreadyExists)

		project, err := useCase.Create(ctx, &domain.CreateProjectInput{Name: "billing"})

		assert.Nil(t, project)
		assert.ErrorIs(t, err, domain.ErrProjectAlreadyExists)
	})
}

func TestProjectUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ByID", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		project := &domain.Project{ID: 7, Name: "billing"}
		mockRepo.On("GetByID", ctx, int64(7)).Return(project, nil)

		id := int64(7)
		got, err := useCase.Get(ctx, domain.Selector{ID: &id})

		require.NoError(t, err)
		assert.Equal(t, project, got)
		mockRepo.AssertNotCalled(t, "GetByName")
	})

	t.Run("Success_ByName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		project := &domain.Project{ID: 7, Name: "billing"}
		mockRepo.On("GetByName", ctx, "billing").Return(project, nil)

		got, err := useCase.Get(ctx, domain.Selector{Name: "billing"})

		require.NoError(t, err)
		assert.Equal(t, project, got)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Error_BothIDAndName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		id := int64(7)
		got, err := useCase.Get(ctx, domain.Selector{ID: &id, Name: "billing"})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrProjectSelector)
	})

	t.Run("Error_NeitherIDNorName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		got, err := useCase.Get(ctx, domain.Selector{})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrProjectSelector)
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Rename", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		existing := &domain.Project{ID: 7, Name: "billing", UpdatedAt: time.Now().Add(-time.Hour)}
		mockRepo.On("GetByID", ctx, int64(7)).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.ID == 7 && p.Name == "billing-v2"
		})).Return(nil)

		project, err := useCase.Update(ctx, 7, &domain.UpdateProjectInput{Name: "billing-v2"})

		require.NoError(t, err)
		assert.Equal(t, "billing-v2", project.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrProjectNotFound)

		project, err := useCase.Update(ctx, 99, &domain.UpdateProjectInput{Name: "ghost"})

		assert.Nil(t, project)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		useCase := NewProjectUseCase(mockRepo)

		project, err := useCase.Update(ctx, 7, &domain.UpdateProjectInput{Name: ""})

		assert.Nil(t, project)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockProjectRepository{}
	useCase := NewProjectUseCase(mockRepo)

	mockRepo.On("Delete", ctx, int64(7)).Return(nil)

	assert.NoError(t, useCase.Delete(ctx, 7))
	mockRepo.AssertExpectations(t)
}

func TestProjectUseCase_List(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockProjectRepository{}
	useCase := NewProjectUseCase(mockRepo)

	projects := []*domain.Project{
		{ID: 1, Name: "billing"},
		{ID: 2, Name: "notifications"},
	}
	mockRepo.On("List", ctx, 0, 10).Return(projects, nil)

	got, err := useCase.List(ctx, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, projects, got)
}
