// Package http provides HTTP handlers for email domain management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	"github.com/allisson/identity/internal/emaildomain/domain"
	"github.com/allisson/identity/internal/emaildomain/http/dto"
	emailDomainUseCase "github.com/allisson/identity/internal/emaildomain/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// EmailDomainHandler handles HTTP requests for email domain management.
type EmailDomainHandler struct {
	emailDomainUseCase emailDomainUseCase.EmailDomainUseCase
	logger             *slog.Logger
}

// NewEmailDomainHandler creates a new email domain handler with required dependencies.
func NewEmailDomainHandler(
	emailDomainUseCase emailDomainUseCase.EmailDomainUseCase,
	logger *slog.Logger,
) *EmailDomainHandler {
	return &EmailDomainHandler{
		emailDomainUseCase: emailDomainUseCase,
		logger:             logger,
	}
}

// CreateHandler registers a new email domain. The domain starts unverified
// and the caller must have access to its project.
// POST /v1/email-domains - Returns 201 Created.
func (h *EmailDomainHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEmailDomainRequest

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

	emailDomain, err := h.emailDomainUseCase.Create(c.Request.Context(), &domain.EmailDomain{
		Domain:    req.Domain,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEmailDomainToResponse(emailDomain))
}

// GetHandler retrieves an email domain by id.
// GET /v1/email-domains/:id - Returns 200 OK.
func (h *EmailDomainHandler) GetHandler(c *gin.Context) {
	id, err := parseEmailDomainID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	emailDomain, err := h.emailDomainUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, emailDomain.ProjectID, h.logger) {
		return
	}

	c.JSON(http.StatusOK, dto.MapEmailDomainToResponse(emailDomain))
}

// UpdateHandler updates an existing email domain. Changing the domain name
// resets the verified flag. The caller must have access to the email
// domain's project.
// PUT /v1/email-domains/:id - Returns 200 OK with updated data.
func (h *EmailDomainHandler) UpdateHandler(c *gin.Context) {
	id, err := parseEmailDomainID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.emailDomainUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	var req dto.UpdateEmailDomainRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	emailDomain, err := h.emailDomainUseCase.Update(c.Request.Context(), id, &domain.EmailDomain{
		Domain:    req.Domain,
		ProjectID: req.ProjectID,
		Verified:  req.Verified,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmailDomainToResponse(emailDomain))
}

// DeleteHandler removes an email domain. The caller must have access to the
// email domain's project.
// DELETE /v1/email-domains/:id - Returns 204 No Content.
func (h *EmailDomainHandler) DeleteHandler(c *gin.Context) {
	id, err := parseEmailDomainID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	existing, err := h.emailDomainUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !authHTTP.RequireProjectAccess(c, existing.ProjectID, h.logger) {
		return
	}

	if err := h.emailDomainUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves the email domains of the authorized project scope.
// GET /v1/email-domains?offset=0&limit=50 - Returns 200 OK. The project is
// the one resolved by the project middleware.
func (h *EmailDomainHandler) ListHandler(c *gin.Context) {
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

	domains, err := h.emailDomainUseCase.ListByProject(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmailDomainsToListResponse(domains))
}

// parseEmailDomainID extracts and validates the id route parameter.
func parseEmailDomainID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid email domain id: must be a non-negative integer")
	}
	return id, nil
}
