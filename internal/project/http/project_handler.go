// Package http provides HTTP handlers for project management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/identity/internal/auth/http"
	"github.com/allisson/identity/internal/httputil"
	"github.com/allisson/identity/internal/project/domain"
	"github.com/allisson/identity/internal/project/http/dto"
	projectUseCase "github.com/allisson/identity/internal/project/usecase"
	customValidation "github.com/allisson/identity/internal/validation"
)

// ProjectHandler handles HTTP requests for project management operations.
type ProjectHandler struct {
	projectUseCase projectUseCase.ProjectUseCase
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler with required dependencies.
func NewProjectHandler(projectUseCase projectUseCase.ProjectUseCase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new project.
// POST /v1/projects - Returns 201 Created.
func (h *ProjectHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	project, err := h.projectUseCase.Create(c.Request.Context(), &domain.CreateProjectInput{Name: req.Name})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProjectToResponse(project))
}

// GetHandler resolves a project by exactly one of id or name.
// GET /v1/projects/lookup?id=7 or GET /v1/projects/lookup?name=acme
// Returns 200 OK; supplying both or neither selector is a validation error.
func (h *ProjectHandler) GetHandler(c *gin.Context) {
	selector := domain.Selector{Name: c.Query("name")}

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			httputil.HandleValidationErrorGin(c,
				fmt.Errorf("invalid project id: must be an integer"),
				h.logger)
			return
		}
		selector.ID = &id
	}

	project, err := h.projectUseCase.Get(c.Request.Context(), selector)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// GetByIDHandler retrieves a project by its route id. The caller must have
// access to the project.
// GET /v1/projects/:projectId - Returns 200 OK.
func (h *ProjectHandler) GetByIDHandler(c *gin.Context) {
	id, err := parseProjectID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, id, h.logger) {
		return
	}

	project, err := h.projectUseCase.Get(c.Request.Context(), domain.Selector{ID: &id})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// UpdateHandler renames an existing project.
// PUT /v1/projects/:projectId - Returns 200 OK with updated project data.
func (h *ProjectHandler) UpdateHandler(c *gin.Context) {
	id, err := parseProjectID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, id, h.logger) {
		return
	}

	var req dto.UpdateProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	project, err := h.projectUseCase.Update(c.Request.Context(), id, &domain.UpdateProjectInput{Name: req.Name})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// DeleteHandler removes a project and cascades its API keys and user links.
// DELETE /v1/projects/:projectId - Returns 204 No Content.
func (h *ProjectHandler) DeleteHandler(c *gin.Context) {
	id, err := parseProjectID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, id, h.logger) {
		return
	}

	if err := h.projectUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves projects with pagination support.
// GET /v1/projects?offset=0&limit=50 - Returns 200 OK.
func (h *ProjectHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	projects, err := h.projectUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectsToListResponse(projects))
}

func parseProjectID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid project id: must be a non-negative integer")
	}
	return id, nil
}
