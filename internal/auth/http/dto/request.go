// Package dto provides data transfer objects for token endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// IssueTokenFromAPIKeyRequest exchanges a raw API key for a session token.
type IssueTokenFromAPIKeyRequest struct {
	Key string `json:"key"`
}

// Validate checks if the request is valid.
func (r *IssueTokenFromAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// IssueTokenFromCredentialsRequest exchanges user credentials for a session token.
type IssueTokenFromCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the request is valid.
func (r *IssueTokenFromCredentialsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}
