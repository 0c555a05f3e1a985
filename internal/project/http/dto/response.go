package dto

import (
	"time"

	"github.com/allisson/identity/internal/project/domain"
)

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListProjectsResponse represents a paginated list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// MapProjectToResponse converts a domain project to its response representation.
func MapProjectToResponse(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

// MapProjectsToListResponse converts a slice of domain projects to a list response.
func MapProjectsToListResponse(projects []*domain.Project) ListProjectsResponse {
	response := ListProjectsResponse{Projects: make([]ProjectResponse, 0, len(projects))}
	for _, project := range projects {
		response.Projects = append(response.Projects, MapProjectToResponse(project))
	}
	return response
}
