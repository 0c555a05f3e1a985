// Package http provides HTTP handlers for API key management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/identity/internal/apikey/domain"
	"github.com/allisson/identity/internal/apikey/http/dto"
	apiKeyUseCase "github.com/allisson/identity/internal/apikey/usecase"
	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// APIKeyHandler handles HTTP requests for API key management operations.
type APIKeyHandler struct {
	apiKeyUseCase apiKeyUseCase.APIKeyUseCase
	logger        *slog.Logger
}

// NewAPIKeyHandler creates a new API key handler with required dependencies.
func NewAPIKeyHandler(apiKeyUseCase apiKeyUseCase.APIKeyUseCase, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyUseCase: apiKeyUseCase,
		logger:        logger,
	}
}

// IssueHandler creates a new API key. The caller must have access to the
// project the key is minted for.
// POST /v1/api-keys - Returns 201 Created with the raw key included exactly once.
func (h *APIKeyHandler) IssueHandler(c *gin.Context) {
	var req dto.IssueAPIKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, req.ProjectID, h.logger) {
		return
	}

	input := &domain.CreateAPIKeyInput{
		Environment: req.Environment,
		Description: req.Description,
		Scopes:      req.Scopes,
		ProjectID:   req.ProjectID,
	}

	output, err := h.apiKeyUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssueOutputToResponse(output))
}

// GetHandler retrieves an API key by id. The raw key is never returned.
// GET /v1/api-keys/:id - Returns 200 OK.
func (h *APIKeyHandler) GetHandler(c *gin.Context) {
	id, err := parseAPIKeyID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	apiKey, err := h.apiKeyUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAPIKeyToResponse(apiKey))
}

// RevokeHandler removes an API key by id.
// DELETE /v1/api-keys/:id - Returns 204 No Content.
func (h *APIKeyHandler) RevokeHandler(c *gin.Context) {
	id, err := parseAPIKeyID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.apiKeyUseCase.Revoke(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// RevokeByKeyHandler removes an API key identified by its raw key material,
// for callers that hold the key but not its id.
// POST /v1/api-keys/revoke - Returns 204 No Content.
func (h *APIKeyHandler) RevokeByKeyHandler(c *gin.Context) {
	var req dto.RevokeAPIKeyByKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.apiKeyUseCase.RevokeByKey(c.Request.Context(), req.Key); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// RevokeAllForProjectHandler removes every API key bound to a project. The
// project id comes from the project middleware, which has already authorized
// the caller against it.
// DELETE /v1/projects/:projectId/api-keys - Returns 200 OK with the removal count.
func (h *APIKeyHandler) RevokeAllForProjectHandler(c *gin.Context) {
	projectID, ok := authHTTP.GetProjectID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, h.logger)
		return
	}

	count, err := h.apiKeyUseCase.RevokeAllForProject(c.Request.Context(), projectID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revoked": count})
}

// ListHandler retrieves the API keys bound to a project with pagination. The
// project id comes from the project middleware, which has already authorized
// the caller against it.
// GET /v1/projects/:projectId/api-keys?offset=0&limit=50 - Returns 200 OK.
func (h *APIKeyHandler) ListHandler(c *gin.Context) {
	projectID, ok := authHTTP.GetProjectID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	apiKeys, err := h.apiKeyUseCase.List(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAPIKeysToListResponse(apiKeys))
}

func parseAPIKeyID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid api key id: must be a valid uuid")
	}
	return id, nil
}
