package dto

import (
	"time"

	"github.com/allisson/identity/internal/analytics/domain"
)

// AnalyticsConfigResponse represents an analytics config in API responses.
type AnalyticsConfigResponse struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Provider  string    `json:"provider"`
	SiteID    string    `json:"site_id"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListAnalyticsConfigsResponse represents a paginated list of analytics configs.
type ListAnalyticsConfigsResponse struct {
	AnalyticsConfigs []AnalyticsConfigResponse `json:"analytics_configs"`
}

// CounterResponse represents a counter in API responses.
type CounterResponse struct {
	Name      string `json:"name"`
	ProjectID int64  `json:"project_id"`
	Value     int64  `json:"value"`
}

// MapAnalyticsConfigToResponse converts a domain config to its response representation.
func MapAnalyticsConfigToResponse(config *domain.AnalyticsConfig) AnalyticsConfigResponse {
	return AnalyticsConfigResponse{
		ID:        config.ID,
		ProjectID: config.ProjectID,
		Provider:  config.Provider,
		SiteID:    config.SiteID,
		Enabled:   config.Enabled,
		CreatedAt: config.CreatedAt,
		UpdatedAt: config.UpdatedAt,
	}
}

// MapAnalyticsConfigsToListResponse converts a slice of configs to a list response.
func MapAnalyticsConfigsToListResponse(configs []*domain.AnalyticsConfig) ListAnalyticsConfigsResponse {
	response := ListAnalyticsConfigsResponse{
		AnalyticsConfigs: make([]AnalyticsConfigResponse, 0, len(configs)),
	}
	for _, config := range configs {
		response.AnalyticsConfigs = append(response.AnalyticsConfigs, MapAnalyticsConfigToResponse(config))
	}
	return response
}

// MapCounterToResponse converts a domain counter to its response representation.
func MapCounterToResponse(counter *domain.Counter) CounterResponse {
	return CounterResponse{
		Name:      counter.Name,
		ProjectID: counter.ProjectID,
		Value:     counter.Value,
	}
}
