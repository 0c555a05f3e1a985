// Package http provides HTTP handlers for file storage management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/file/domain"
	"github.com/allisson/identity/internal/file/http/dto"
	fileUseCase "github.com/allisson/identity/internal/file/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// FileProviderHandler handles HTTP requests for file provider management.
type FileProviderHandler struct {
	providerUseCase fileUseCase.FileProviderUseCase
	logger          *slog.Logger
}

// NewFileProviderHandler creates a new file provider handler with required dependencies.
func NewFileProviderHandler(
	providerUseCase fileUseCase.FileProviderUseCase,
	logger *slog.Logger,
) *FileProviderHandler {
	return &FileProviderHandler{
		providerUseCase: providerUseCase,
		logger:          logger,
	}
}

// CreateHandler registers a new file provider.
// POST /v1/file-providers - Returns 201 Created.
func (h *FileProviderHandler) CreateHandler(c *gin.Context) {
	var req dto.FileProviderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	provider, err := h.providerUseCase.Create(c.Request.Context(), &domain.FileProvider{
		Name:   req.Name,
		Kind:   domain.ProviderKind(req.Kind),
		Config: req.Config,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFileProviderToResponse(provider))
}

// GetHandler retrieves a file provider by id.
// GET /v1/file-providers/:id - Returns 200 OK.
func (h *FileProviderHandler) GetHandler(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	provider, err := h.providerUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFileProviderToResponse(provider))
}

// UpdateHandler updates an existing file provider.
// PUT /v1/file-providers/:id - Returns 200 OK with updated data.
func (h *FileProviderHandler) UpdateHandler(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.FileProviderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	provider, err := h.providerUseCase.Update(c.Request.Context(), id, &domain.FileProvider{
		Name:   req.Name,
		Kind:   domain.ProviderKind(req.Kind),
		Config: req.Config,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFileProviderToResponse(provider))
}

// DeleteHandler removes a file provider.
// DELETE /v1/file-providers/:id - Returns 204 No Content.
func (h *FileProviderHandler) DeleteHandler(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.providerUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves file providers with pagination.
// GET /v1/file-providers?offset=0&limit=50 - Returns 200 OK.
func (h *FileProviderHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	providers, err := h.providerUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFileProvidersToListResponse(providers))
}

func parseResourceID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id: must be a non-negative integer")
	}
	return id, nil
}
