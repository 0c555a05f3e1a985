package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/identity/internal/emaildomain/domain"
	appValidation "github.com/allisson/identity/internal/validation"
)

// emailDomainUseCase implements EmailDomainUseCase.
type emailDomainUseCase struct {
	domainRepo EmailDomainRepository
}

// NewEmailDomainUseCase creates a new EmailDomainUseCase.
func NewEmailDomainUseCase(domainRepo EmailDomainRepository) EmailDomainUseCase {
	return &emailDomainUseCase{domainRepo: domainRepo}
}

func (e *emailDomainUseCase) validate(emailDomain *domain.EmailDomain) error {
	err := validation.Errors{
		"domain": validation.Validate(emailDomain.Domain,
			validation.Required.Error("domain is required"),
			appValidation.NotBlank,
			appValidation.DomainName,
			validation.Length(3, 255).Error("domain must be between 3 and 255 characters"),
		),
		"project_id": validation.Validate(emailDomain.ProjectID,
			validation.Required.Error("project_id is required"),
			validation.Min(int64(1)).Error("project_id must be a positive integer"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	return nil
}

// Create registers a new email domain. Domains are stored lowercased and
// always start unverified.
func (e *emailDomainUseCase) Create(
	ctx context.Context,
	emailDomain *domain.EmailDomain,
) (*domain.EmailDomain, error) {
	if err := e.validate(emailDomain); err != nil {
		return nil, err
	}

	emailDomain.Domain = strings.TrimSpace(strings.ToLower(emailDomain.Domain))
	emailDomain.Verified = false
	emailDomain.CreatedAt = time.Now().UTC()
	emailDomain.UpdatedAt = time.Now().UTC()

	if err := e.domainRepo.Create(ctx, emailDomain); err != nil {
		return nil, err
	}
	return emailDomain, nil
}

// Get retrieves an email domain by id.
func (e *emailDomainUseCase) Get(ctx context.Context, id int64) (*domain.EmailDomain, error) {
	return e.domainRepo.GetByID(ctx, id)
}

// Update modifies an existing email domain. Changing the domain name clears
// the verified flag; the external verification flow sets it again.
func (e *emailDomainUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.EmailDomain,
) (*domain.EmailDomain, error) {
	if err := e.validate(input); err != nil {
		return nil, err
	}

	emailDomain, err := e.domainRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newDomain := strings.TrimSpace(strings.ToLower(input.Domain))
	if newDomain != emailDomain.Domain {
		emailDomain.Verified = false
	} else {
		emailDomain.Verified = input.Verified
	}

	emailDomain.Domain = newDomain
	emailDomain.ProjectID = input.ProjectID
	emailDomain.UpdatedAt = time.Now().UTC()

	if err := e.domainRepo.Update(ctx, emailDomain); err != nil {
		return nil, err
	}
	return emailDomain, nil
}

// Delete removes an email domain.
func (e *emailDomainUseCase) Delete(ctx context.Context, id int64) error {
	return e.domainRepo.Delete(ctx, id)
}

// ListByProject retrieves a project's email domains with pagination.
func (e *emailDomainUseCase) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.EmailDomain, error) {
	return e.domainRepo.ListByProject(ctx, projectID, offset, limit)
}
