// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/allisson/identity/internal/user/domain"
)

// UserRepository defines persistence operations for users and their project links.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	LinkProject(ctx context.Context, userID, projectID int64) error
	UnlinkProject(ctx context.Context, userID, projectID int64) error
}

// UserUseCase defines the user business operations.
type UserUseCase interface {
	Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, input *domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	LinkProject(ctx context.Context, userID, projectID int64) error
	UnlinkProject(ctx context.Context, userID, projectID int64) error
	// VerifyPassword compares a plaintext password against the user's stored hash.
	VerifyPassword(user *domain.User, password string) bool
}
