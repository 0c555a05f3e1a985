package dto

import (
	"time"

	"github.com/allisson/identity/internal/user/domain"
)

// UserResponse represents a user in API responses. The password hash is never
// exposed.
type UserResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Type       string    `json:"type"`
	ProjectIDs []int64   `json:"project_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListUsersResponse represents a paginated list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// MapUserToResponse converts a domain user to its response representation.
func MapUserToResponse(user *domain.User) UserResponse {
	projectIDs := user.ProjectIDs
	if projectIDs == nil {
		projectIDs = []int64{}
	}
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Type:       string(user.Type),
		ProjectIDs: projectIDs,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// MapUsersToListResponse converts a slice of domain users to a list response.
func MapUsersToListResponse(users []*domain.User) ListUsersResponse {
	response := ListUsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		response.Users = append(response.Users, MapUserToResponse(user))
	}
	return response
}
