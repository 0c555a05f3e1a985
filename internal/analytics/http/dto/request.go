// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// CreateAnalyticsConfigRequest contains the parameters for creating an analytics config.
type CreateAnalyticsConfigRequest struct {
	ProjectID int64  `json:"project_id"`
	Provider  string `json:"provider"`
	SiteID    string `json:"site_id"`
	Enabled   bool   `json:"enabled"`
}

// Validate checks if the create analytics config request is valid.
func (r *CreateAnalyticsConfigRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.Provider,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.SiteID,
			validation.Length(0, 255),
		),
	)
}

// UpdateAnalyticsConfigRequest contains the mutable analytics config fields.
type UpdateAnalyticsConfigRequest struct {
	Provider string `json:"provider"`
	SiteID   string `json:"site_id"`
	Enabled  bool   `json:"enabled"`
}

// Validate checks if the update analytics config request is valid.
func (r *UpdateAnalyticsConfigRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Provider,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.SiteID,
			validation.Length(0, 255),
		),
	)
}
