package dto

import (
	"time"

	"github.com/allisson/identity/internal/file/domain"
)

// FileProviderResponse represents a file provider in API responses.
type FileProviderResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Config    map[string]any `json:"config"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ListFileProvidersResponse represents a paginated list of file providers.
type ListFileProvidersResponse struct {
	FileProviders []FileProviderResponse `json:"file_providers"`
}

// FileBucketResponse represents a file bucket in API responses.
type FileBucketResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ProviderID int64     `json:"provider_id"`
	ProjectID  int64     `json:"project_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListFileBucketsResponse represents a paginated list of file buckets.
type ListFileBucketsResponse struct {
	FileBuckets []FileBucketResponse `json:"file_buckets"`
}

// FileResponse represents a file record in API responses.
type FileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BucketID  int64     `json:"bucket_id"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilesResponse represents a paginated list of file records.
type ListFilesResponse struct {
	Files []FileResponse `json:"files"`
}

// MapFileProviderToResponse converts a domain file provider to its response representation.
func MapFileProviderToResponse(provider *domain.FileProvider) FileProviderResponse {
	return FileProviderResponse{
		ID:        provider.ID,
		Name:      provider.Name,
		Kind:      string(provider.Kind),
		Config:    provider.Config,
		CreatedAt: provider.CreatedAt,
		UpdatedAt: provider.UpdatedAt,
	}
}

// MapFileProvidersToListResponse converts a slice of providers to a list response.
func MapFileProvidersToListResponse(providers []*domain.FileProvider) ListFileProvidersResponse {
	response := ListFileProvidersResponse{
		FileProviders: make([]FileProviderResponse, 0, len(providers)),
	}
	for _, provider := range providers {
		response.FileProviders = append(response.FileProviders, MapFileProviderToResponse(provider))
	}
	return response
}

// MapFileBucketToResponse converts a domain file bucket to its response representation.
func MapFileBucketToResponse(bucket *domain.FileBucket) FileBucketResponse {
	return FileBucketResponse{
		ID:         bucket.ID,
		Name:       bucket.Name,
		ProviderID: bucket.ProviderID,
		ProjectID:  bucket.ProjectID,
		CreatedAt:  bucket.CreatedAt,
		UpdatedAt:  bucket.UpdatedAt,
	}
}

// MapFileBucketsToListResponse converts a slice of buckets to a list response.
func MapFileBucketsToListResponse(buckets []*domain.FileBucket) ListFileBucketsResponse {
	response := ListFileBucketsResponse{
		FileBuckets: make([]FileBucketResponse, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		response.FileBuckets = append(response.FileBuckets, MapFileBucketToResponse(bucket))
	}
	return response
}

// MapFileToResponse converts a domain file record to its response representation.
func MapFileToResponse(file *domain.File) FileResponse {
	return FileResponse{
		ID:        file.ID.String(),
		Name:      file.Name,
		BucketID:  file.BucketID,
		Size:      file.Size,
		MimeType:  file.MimeType,
		ProjectID: file.ProjectID,
		CreatedAt: file.CreatedAt,
		UpdatedAt: file.UpdatedAt,
	}
}

// MapFilesToListResponse converts a slice of file records to a list response.
func MapFilesToListResponse(files []*domain.File) ListFilesResponse {
	response := ListFilesResponse{Files: make([]FileResponse, 0, len(files))}
	for _, file := range files {
		response.Files = append(response.Files, MapFileToResponse(file))
	}
	return response
}
