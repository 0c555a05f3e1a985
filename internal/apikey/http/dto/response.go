package dto

import (
	"time"

	"github.com/allisson/identity/internal/apikey/domain"
)

// APIKeyResponse represents an API key in API responses. The stored hash and
// the raw key material are never included.
type APIKeyResponse struct {
	ID          string    `json:"id"`
	Environment string    `json:"environment"`
	Description string    `json:"description"`
	Scopes      []string  `json:"scopes"`
	ProjectID   int64     `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// IssueAPIKeyResponse is returned once at issuance and is the only place the
// raw key ever appears.
type IssueAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}

// ListAPIKeysResponse represents a paginated list of API keys.
type ListAPIKeysResponse struct {
	APIKeys []APIKeyResponse `json:"api_keys"`
}

// MapAPIKeyToResponse converts a domain API key to its response representation.
func MapAPIKeyToResponse(apiKey *domain.APIKey) APIKeyResponse {
	scopes := apiKey.Scopes
	if scopes == nil {
		scopes = []string{}
	}

	return APIKeyResponse{
		ID:          apiKey.ID.String(),
		Environment: apiKey.Environment,
		Description: apiKey.Description,
		Scopes:      scopes,
		ProjectID:   apiKey.ProjectID,
		CreatedAt:   apiKey.CreatedAt,
	}
}

// MapIssueOutputToResponse converts an issuance output to its response representation.
func MapIssueOutputToResponse(output *domain.IssueAPIKeyOutput) IssueAPIKeyResponse {
	return IssueAPIKeyResponse{
		APIKeyResponse: MapAPIKeyToResponse(output.APIKey),
		Key:            output.RawKey,
	}
}

// MapAPIKeysToListResponse converts a slice of domain API keys to a list response.
func MapAPIKeysToListResponse(apiKeys []*domain.APIKey) ListAPIKeysResponse {
	response := ListAPIKeysResponse{APIKeys: make([]APIKeyResponse, 0, len(apiKeys))}
	for _, apiKey := range apiKeys {
		response.APIKeys = append(response.APIKeys, MapAPIKeyToResponse(apiKey))
	}
	return response
}
