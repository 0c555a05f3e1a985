// Package http provides HTTP handlers for analytics configuration and counters.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/analytics/domain"
	"github.com/allisson/identity/internal/analytics/http/dto"
	analyticsUseCase "github.com/allisson/identity/internal/analytics/usecase"
	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// AnalyticsConfigHandler handles HTTP requests for analytics config management.
type AnalyticsConfigHandler struct {
	configUseCase analyticsUseCase.AnalyticsConfigUseCase
	logger        *slog.Logger
}

// NewAnalyticsConfigHandler creates a new analytics config handler with required dependencies.
func NewAnalyticsConfigHandler(
	configUseCase analyticsUseCase.AnalyticsConfigUseCase,
	logger *slog.Logger,
) *AnalyticsConfigHandler {
	return &AnalyticsConfigHandler{
		configUseCase: configUseCase,
		logger:        logger,
	}
}

// CreateHandler registers a new analytics config. The caller must have
// access to the project the config is bound to.
// POST /v1/analytics-configs - Returns 201 Created.
func (h *AnalyticsConfigHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAnalyticsConfigRequest

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

	config, err := h.configUseCase.Create(c.Request.Context(), &domain.AnalyticsConfig{
		ProjectID: req.ProjectID,
		Provider:  req.Provider,
		SiteID:    req.SiteID,
		Enabled:   req.Enabled,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAnalyticsConfigToResponse(config))
}

// GetHandler retrieves an analytics config by id.
// GET /v1/analytics-configs/:id - Returns 200 OK.
func (h *AnalyticsConfigHandler) GetHandler(c *gin.Context) {
	id, err := parseConfigID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	config, err := h.configUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, config.ProjectID, h.logger) {
		return
	}

	c.JSON(http.StatusOK, dto.MapAnalyticsConfigToResponse(config))
}

// UpdateHandler updates an existing analytics config. The caller must have
// access to the config's project.
// PUT /v1/analytics-configs/:id - Returns 200 OK with updated data.
func (h *AnalyticsConfigHandler) UpdateHandler(c *gin.Context) {
	id, err := parseConfigID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.configUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	var req dto.UpdateAnalyticsConfigRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	config, err := h.configUseCase.Update(c.Request.Context(), id, &domain.AnalyticsConfig{
		Provider: req.Provider,
		SiteID:   req.SiteID,
		Enabled:  req.Enabled,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAnalyticsConfigToResponse(config))
}

// DeleteHandler removes an analytics config. The caller must have access to
// the config's project.
// DELETE /v1/analytics-configs/:id - Returns 204 No Content.
func (h *AnalyticsConfigHandler) DeleteHandler(c *gin.Context) {
	id, err := parseConfigID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.configUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	if err := h.configUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves analytics configs with pagination.
// GET /v1/analytics-configs?offset=0&limit=50 - Returns 200 OK.
func (h *AnalyticsConfigHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	configs, err := h.configUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAnalyticsConfigsToListResponse(configs))
}

// CounterHandler handles HTTP requests for project-scoped counters. The
// project is always the one resolved by the project middleware.
type CounterHandler struct {
	counterUseCase analyticsUseCase.CounterUseCase
	logger         *slog.Logger
}

// NewCounterHandler creates a new counter handler with required dependencies.
func NewCounterHandler(
	counterUseCase analyticsUseCase.CounterUseCase,
	logger *slog.Logger,
) *CounterHandler {
	return &CounterHandler{
		counterUseCase: counterUseCase,
		logger:         logger,
	}
}

// IncrementHandler adds one to a counter and returns the new value.
// POST /v1/counters/:name/increment - Returns 200 OK.
func (h *CounterHandler) IncrementHandler(c *gin.Context) {
	projectID, ok := authHTTP.GetProjectID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, h.logger)
		return
	}

	counter, err := h.counterUseCase.Increment(c.Request.Context(), projectID, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCounterToResponse(counter))
}

// GetHandler retrieves a counter's current value.
// GET /v1/counters/:name - Returns 200 OK; a never-incremented counter reads as zero.
func (h *CounterHandler) GetHandler(c *gin.Context) {
	projectID, ok := authHTTP.GetProjectID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, h.logger)
		return
	}

	counter, err := h.counterUseCase.Get(c.Request.Context(), projectID, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCounterToResponse(counter))
}

// ResetHandler sets a counter back to zero.
// DELETE /v1/counters/:name - Returns 204 No Content.
func (h *CounterHandler) ResetHandler(c *gin.Context) {
	projectID, ok := authHTTP.GetProjectID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, h.logger)
		return
	}

	if err := h.counterUseCase.Reset(c.Request.Context(), projectID, c.Param("name")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func parseConfigID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id: must be a non-negative integer")
	}
	return id, nil
}
