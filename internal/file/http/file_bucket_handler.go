package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	"github.com/allisson/identity/internal/file/domain"
	"github.com/allisson/identity/internal/file/http/dto"
	fileUseCase "github.com/allisson/identity/internal/file/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// FileBucketHandler handles HTTP requests for file bucket management.
type FileBucketHandler struct {
	bucketUseCase fileUseCase.FileBucketUseCase
	logger        *slog.Logger
}

// NewFileBucketHandler creates a new file bucket handler with required dependencies.
func NewFileBucketHandler(
	bucketUseCase fileUseCase.FileBucketUseCase,
	logger *slog.Logger,
) *FileBucketHandler {
	return &FileBucketHandler{
		bucketUseCase: bucketUseCase,
		logger:        logger,
	}
}

// CreateHandler registers a new file bucket. The caller must have access to
// the project the bucket belongs to.
// POST /v1/file-buckets - Returns 201 Created.
func (h *FileBucketHandler) CreateHandler(c *gin.Context) {
	var req dto.FileBucketRequest

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

	bucket, err := h.bucketUseCase.Create(c.Request.Context(), &domain.FileBucket{
		Name:       req.Name,
		ProviderID: req.ProviderID,
		ProjectID:  req.ProjectID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFileBucketToResponse(bucket))
}

// GetHandler retrieves a file bucket by id.
// GET /v1/file-buckets/:id - Returns 200 OK.
func (h *FileBucketHandler) GetHandler(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	bucket, err := h.bucketUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, bucket.ProjectID, h.logger) {
		return
	}

	c.JSON(http.StatusOK, dto.MapFileBucketToResponse(bucket))
}

// UpdateHandler updates an existing file bucket. The caller must have access
// to the bucket's project.
// PUT /v1/file-buckets/:id - Returns 200 OK with updated data.
func (h *FileBucketHandler) UpdateHandler(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.bucketUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	var req dto.FileBucketRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	bucket, err := h.bucketUseCase.Update(c.Request.Context(), id, &domain.FileBucket{
		Name:       req.Name,
		ProviderID: req.ProviderID,
		ProjectID:  req.ProjectID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFileBucketToResponse(bucket))
}

// DeleteHandler removes a file bucket. The caller must have access to the
// bucket's project.
// DELETE /v1/file-buckets/:id - Returns 204 No Content.
func (h *FileBucketHandler) DeleteHandler(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.bucketUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	if err := h.bucketUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves the file buckets of the authorized project scope.
// GET /v1/file-buckets?offset=0&limit=50 - Returns 200 OK. The project is the
// one resolved by the project middleware.
func (h *FileBucketHandler) ListHandler(c *gin.Context) {
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

	buckets, err := h.bucketUseCase.ListByProject(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFileBucketsToListResponse(buckets))
}
