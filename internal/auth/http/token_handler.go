package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/auth/http/dto"
	authUseCase "github.com/allisson/identity/internal/auth/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// TokenHandler handles HTTP requests for bearer token issuance.
type TokenHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// IssueFromAPIKeyHandler exchanges a raw API key for a delegated session token.
// POST /v1/tokens - Returns 201 Created.
func (h *TokenHandler) IssueFromAPIKeyHandler(c *gin.Context) {
	var req dto.IssueTokenFromAPIKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.authUseCase.IssueTokenFromAPIKey(c.Request.Context(), req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// IssueFromCredentialsHandler exchanges SUPERADMIN credentials for a user
// session token.
// POST /v1/tokens/login - Returns 201 Created.
func (h *TokenHandler) IssueFromCredentialsHandler(c *gin.Context) {
	var req dto.IssueTokenFromCredentialsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.authUseCase.IssueTokenFromUserCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}
