// Package usecase implements the email domain business logic.
package usecase

import (
	"context"

	"github.com/allisson/identity/internal/emaildomain/domain"
)

// EmailDomainRepository defines persistence operations for email domains.
type EmailDomainRepository interface {
	Create(ctx context.Context, emailDomain *domain.EmailDomain) error
	GetByID(ctx context.Context, id int64) (*domain.EmailDomain, error)
	Update(ctx context.Context, emailDomain *domain.EmailDomain) error
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.EmailDomain, error)
}

// EmailDomainUseCase defines the email domain business operations.
type EmailDomainUseCase interface {
	Create(ctx context.Context, emailDomain *domain.EmailDomain) (*domain.EmailDomain, error)
	Get(ctx context.Context, id int64) (*domain.EmailDomain, error)
	Update(ctx context.Context, id int64, emailDomain *domain.EmailDomain) (*domain.EmailDomain, error)
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]*domain.EmailDomain, error)
}
