// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// FileProviderRequest contains the parameters for creating or updating a file provider.
type FileProviderRequest struct {
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Config map[string]any `json:"config"`
}

// Validate checks if the file provider request is valid.
func (r *FileProviderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Kind,
			validation.Required,
			validation.In("s3", "gcs", "local"),
		),
	)
}

// FileBucketRequest contains the parameters for creating or updating a file bucket.
type FileBucketRequest struct {
	Name       string `json:"name"`
	ProviderID int64  `json:"provider_id"`
	ProjectID  int64  `json:"project_id"`
}

// Validate checks if the file bucket request is valid.
func (r *FileBucketRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.ProviderID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(int64(1)),
		),
	)
}

// FileRequest contains the parameters for creating or updating a file record.
type FileRequest struct {
	Name      string `json:"name"`
	BucketID  int64  `json:"bucket_id"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type"`
	ProjectID int64  `json:"project_id"`
}

// Validate checks if the file request is valid.
func (r *FileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.BucketID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.Size,
			validation.Min(int64(0)),
		),
		validation.Field(&r.MimeType,
			validation.Length(0, 255),
		),
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.Min(int64(1)),
		),
	)
}
