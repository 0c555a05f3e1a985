// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// CreateEmailDomainRequest contains the parameters for registering an email domain.
type CreateEmailDomainRequest struct {
	Domain    string `json:"domain"`
	ProjectID int64  `json:"project_id"`
}

// Validate checks if the create email domain request is valid.
func (r *CreateEmailDomainRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Domain,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(3, 255),
		),
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(int64(1)),
		),
	)
}

// UpdateEmailDomainRequest contains the parameters for updating an email domain.
type UpdateEmailDomainRequest struct {
	Domain    string `json:"domain"`
	ProjectID int64  `json:"project_id"`
	Verified  bool   `json:"verified"`
}

// Validate checks if the update email domain request is valid.
func (r *UpdateEmailDomainRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Domain,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(3, 255),
		),
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(int64(1)),
		),
	)
}
