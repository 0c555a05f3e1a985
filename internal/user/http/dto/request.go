// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/identity/internal/user/domain"
	customValidation "github.com/allisson/identity/internal/validation"
)

// userTypeRule validates the type field against the known user types.
var userTypeRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if !domain.UserType(s).Valid() {
		return validation.NewError("validation_user_type", "must be one of SUPERADMIN, ADMIN, USER")
	}
	return nil
})

// CreateUserRequest contains the parameters for registering a new user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 128),
		),
		validation.Field(&r.Type,
			validation.Required,
			userTypeRule,
		),
	)
}

// UpdateUserRequest contains the mutable fields for updating a user.
// Password is optional; omitting it keeps the current password.
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	Type     string  `json:"type"`
}

// Validate checks if the update user request is valid.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty,
			validation.Length(8, 128),
		),
		validation.Field(&r.Type,
			validation.Required,
			userTypeRule,
		),
	)
}

// LinkProjectRequest contains the project id to link or unlink.
type LinkProjectRequest struct {
	ProjectID int64 `json:"project_id"`
}

// Validate checks if the link project request is valid.
func (r *LinkProjectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(1),
		),
	)
}
