// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// IssueAPIKeyRequest contains the parameters for issuing a new API key.
type IssueAPIKeyRequest struct {
	Environment string   `json:"environment"`
	Description string   `json:"description"`
	Scopes      []string `json:"scopes"`
	ProjectID   int64    `json:"project_id"`
}

// Validate checks if the issue API key request is valid.
func (r *IssueAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Environment,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 50),
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
		validation.Field(&r.Scopes,
			validation.Each(validation.Required, customValidation.NotBlank),
		),
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(int64(1)),
		),
	)
}

// RevokeAPIKeyByKeyRequest contains the raw key for revocation without an id.
type RevokeAPIKeyByKeyRequest struct {
	Key string `json:"key"`
}

// Validate checks if the revoke request is valid.
func (r *RevokeAPIKeyByKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
