package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	"github.com/allisson/identity/internal/file/domain"
	"github.com/allisson/identity/internal/file/http/dto"
	fileUseCase "github.com/allisson/identity/internal/file/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// FileHandler handles HTTP requests for file record management.
type FileHandler struct {
	fileUseCase fileUseCase.FileUseCase
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler with required dependencies.
func NewFileHandler(fileUseCase fileUseCase.FileUseCase, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
		logger:      logger,
	}
}

// CreateHandler registers a new file record. The caller must have access to
// the project the file belongs to.
// POST /v1/files - Returns 201 Created.
func (h *FileHandler) CreateHandler(c *gin.Context) {
	var req dto.FileRequest

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

	file, err := h.fileUseCase.Create(c.Request.Context(), &domain.File{
		Name:      req.Name,
		BucketID:  req.BucketID,
		Size:      req.Size,
		MimeType:  req.MimeType,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFileToResponse(file))
}

// GetHandler retrieves a file record by id.
// GET /v1/files/:id - Returns 200 OK.
func (h *FileHandler) GetHandler(c *gin.Context) {
	id, err := parseFileID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	file, err := h.fileUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, file.ProjectID, h.logger) {
		return
	}

	c.JSON(http.StatusOK, dto.MapFileToResponse(file))
}

// UpdateHandler updates an existing file record. The caller must have access
// to the file's project.
// PUT /v1/files/:id - Returns 200 OK with updated data.
func (h *FileHandler) UpdateHandler(c *gin.Context) {
	id, err := parseFileID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.fileUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	var req dto.FileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	file, err := h.fileUseCase.Update(c.Request.Context(), id, &domain.File{
		Name:      req.Name,
		BucketID:  req.BucketID,
		Size:      req.Size,
		MimeType:  req.MimeType,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFileToResponse(file))
}

// DeleteHandler removes a file record. The caller must have access to the
// file's project.
// DELETE /v1/files/:id - Returns 204 No Content.
func (h *FileHandler) DeleteHandler(c *gin.Context) {
	id, err := parseFileID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.fileUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	if err := h.fileUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves the file records of the authorized project scope.
// GET /v1/files?offset=0&limit=50 - Returns 200 OK.
func (h *FileHandler) ListHandler(c *gin.Context) {
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

	files, err := h.fileUseCase.ListByProject(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFilesToListResponse(files))
}

func parseFileID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid file id: must be a valid uuid")
	}
	return id, nil
}
