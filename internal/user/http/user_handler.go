// Package http provides HTTP handlers for user management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/httputil"
	"github.com/allisson/identity/internal/user/domain"
	"github.com/allisson/identity/internal/user/http/dto"
	userUseCase "github.com/allisson/identity/internal/user/usecase"
	customValidation "github.com/allisson/identity/internal/validation"
)

// UserHandler handles HTTP requests for user management operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler registers a new user.
// POST /v1/users - Returns 201 Created (password hash never exposed).
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &domain.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Type:     domain.UserType(req.Type),
	}

	user, err := h.userUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// GetHandler retrieves a user by id or, with the email query parameter, by email.
// GET /v1/users/:id or GET /v1/users/by-email?email=a@b.c - Returns 200 OK.
func (h *UserHandler) GetHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// GetByEmailHandler retrieves a user by email.
// GET /v1/users/by-email?email=a@b.c - Returns 200 OK.
func (h *UserHandler) GetByEmailHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("email query parameter is required"), h.logger)
		return
	}

	user, err := h.userUseCase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// UpdateHandler updates an existing user.
// PUT /v1/users/:id - Returns 200 OK with updated user data.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &domain.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Type:     domain.UserType(req.Type),
	}

	user, err := h.userUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes a user.
// DELETE /v1/users/:id - Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves users with pagination support.
// GET /v1/users?offset=0&limit=50 - Returns 200 OK.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// LinkProjectHandler grants a user access to a project.
// POST /v1/users/:id/projects - Returns 204 No Content.
func (h *UserHandler) LinkProjectHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.LinkProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.userUseCase.LinkProject(c.Request.Context(), id, req.ProjectID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// UnlinkProjectHandler revokes a user's access to a project.
// DELETE /v1/users/:id/projects/:projectId - Returns 204 No Content.
func (h *UserHandler) UnlinkProjectHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	projectID, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil || projectID < 0 {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project id: must be a non-negative integer"),
			h.logger)
		return
	}

	if err := h.userUseCase.UnlinkProject(c.Request.Context(), id, projectID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func parseUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid user id: must be a non-negative integer")
	}
	return id, nil
}
