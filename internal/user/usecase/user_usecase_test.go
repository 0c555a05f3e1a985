package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/user/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepository) LinkProject(ctx context.Context, userID, projectID int64) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *mockUserRepository) UnlinkProject(ctx context.Context, userID, projectID int64) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func newTestUserUseCase(t *testing.T, mockRepo *mockUserRepository) UserUseCase {
	t.Helper()
	useCase, err := NewUserUseCase(mockRepo)
	require.NoError(t, err)
	return useCase
}

func validCreateInput() *domain.CreateUserInput {
	return &domain.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
		Type:     domain.UserTypeAdmin,
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PasswordIsHashed", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@example.com" &&
				u.Password != "" &&
				u.Password != "correct horse battery"
		})).Return(nil)

		user, err := useCase.Create(ctx, validCreateInput())

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, domain.UserTypeAdmin, user.Type)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_EmailIsNormalized", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		input := validCreateInput()
		input.Email = "  Alice@Example.COM  "
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@example.com"
		})).Return(nil)

		user, err := useCase.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		input := validCreateInput()
		input.Email = "not-an-email"

		user, err := useCase.Create(ctx, input)

		assert.Nil(t, user)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_ShortPassword", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		input := validCreateInput()
		input.Password = "short"

		user, err := useCase.Create(ctx, input)

		assert.Nil(t, user)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_InvalidUserType", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		input := validCreateInput()
		input.Type = "ROOT"

		user, err := useCase.Create(ctx, input)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrInvalidUserType)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrUserAlreadyExists)

		user, err := useCase.Create(ctx, validCreateInput())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_GetByEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockUserRepository{}
	useCase := newTestUserUseCase(t, mockRepo)

	user := &domain.User{ID: 1, Email: "alice@example.com"}
	mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)

	got, err := useCase.GetByEmail(ctx, "  Alice@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, user, got)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NilPasswordKeepsHash", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		existing := &domain.User{
			ID:       1,
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "$argon2id$existing-hash",
			Type:     domain.UserTypeAdmin,
		}
		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Password == "$argon2id$existing-hash" && u.Type == domain.UserTypeSuperAdmin
		})).Return(nil)

		user, err := useCase.Update(ctx, 1, &domain.UpdateUserInput{
			Name:  "Alice",
			Email: "alice@example.com",
			Type:  domain.UserTypeSuperAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.UserTypeSuperAdmin, user.Type)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_NewPasswordIsRehashed", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		existing := &domain.User{
			ID:       1,
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "$argon2id$existing-hash",
			Type:     domain.UserTypeAdmin,
		}
		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Password != "$argon2id$existing-hash" &&
				u.Password != "a brand new password"
		})).Return(nil)

		newPassword := "a brand new password"
		_, err := useCase.Update(ctx, 1, &domain.UpdateUserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: &newPassword,
			Type:     domain.UserTypeAdmin,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrUserNotFound)

		user, err := useCase.Update(ctx, 99, &domain.UpdateUserInput{Type: domain.UserTypeUser})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Error_InvalidUserType", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		existing := &domain.User{ID: 1, Type: domain.UserTypeAdmin}
		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil)

		user, err := useCase.Update(ctx, 1, &domain.UpdateUserInput{Type: "ROOT"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrInvalidUserType)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestUserUseCase_ProjectLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Link", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		mockRepo.On("LinkProject", ctx, int64(1), int64(7)).Return(nil)

		assert.NoError(t, useCase.LinkProject(ctx, 1, 7))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_LinkUnknownUser", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrUserNotFound)

		err := useCase.LinkProject(ctx, 99, 7)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		mockRepo.AssertNotCalled(t, "LinkProject")
	})

	t.Run("Success_Unlink", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		useCase := newTestUserUseCase(t, mockRepo)

		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		mockRepo.On("UnlinkProject", ctx, int64(1), int64(7)).Return(nil)

		assert.NoError(t, useCase.UnlinkProject(ctx, 1, 7))
	})
}

func TestUserUseCase_VerifyPassword(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockUserRepository{}
	useCase := newTestUserUseCase(t, mockRepo)

	var created *domain.User
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User)
	}).Return(nil)

	_, err := useCase.Create(ctx, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, useCase.VerifyPassword(created, "correct horse battery"))
	assert.False(t, useCase.VerifyPassword(created, "wrong password"))
}
