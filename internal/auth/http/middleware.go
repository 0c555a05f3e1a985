package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	authUseCase "github.com/allisson/identity/internal/auth/usecase"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/httputil"
)

// Header names recognized by the gate.
const (
	headerProjectID    = "X-Project-Id"
	headerUserEmail    = "X-User-Email"
	headerUserPassword = "X-User-Password"
)

// AuthenticationMiddleware authenticates every inbound request before any
// resource handler executes.
//
// Two paths are supported:
//   - Bearer path: the Authorization header carries either an API key or a
//     signed token; the gate probes the API key first and the token second.
//   - Legacy path: X-User-Email and X-User-Password carry direct credentials;
//     this succeeds only for SUPERADMIN users.
//
// All failures produce the same 401 response so the caller cannot tell which
// credential check rejected them.
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(authUseCase, logger))
//	router.GET("/protected", func(c *gin.Context) {
//	    identity, ok := GetIdentity(c.Request.Context())
//	    ...
//	})
func AuthenticationMiddleware(useCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader(headerUserEmail)
		password := c.GetHeader(headerUserPassword)
		if email != "" || password != "" {
			identity, err := useCase.AuthenticateUserCredentials(c.Request.Context(), email, password)
			if err != nil {
				logger.Debug("authentication failed: direct credential check rejected")
				httputil.HandleErrorGin(c, err, logger)
				c.Abort()
				return
			}

			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
			c.Next()
			return
		}

		credential, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, logger)
			c.Abort()
			return
		}

		identity, err := useCase.Authenticate(c.Request.Context(), credential)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))

		logger.Debug("authentication successful",
			slog.String("subject", string(identity.Subject)))

		c.Next()
	}
}

// ProjectMiddleware resolves and authorizes the project scope for a request.
// It must run after AuthenticationMiddleware.
//
// The explicit project id is taken from, in precedence order: the projectId
// query parameter, the X-Project-Id header, the projectId route parameter.
// An empty value means "not supplied". A non-numeric or negative value is a
// 400 before any authorization check runs. Without an explicit id the project
// bound to the identity's API key is used; if there is none, the request
// fails with 401 "API key missing".
func ProjectMiddleware(useCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok || identity == nil {
			logger.Debug("project authorization failed: no identity in context")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, logger)
			c.Abort()
			return
		}

		requested, err := explicitProjectID(c)
		if err != nil {
			httputil.HandleValidationErrorGin(c, err, logger)
			c.Abort()
			return
		}

		projectID, err := useCase.AuthorizeProject(c.Request.Context(), identity, requested)
		if err != nil {
			if apperrors.Is(err, authDomain.ErrAPIKeyMissing) {
				logger.Debug("project authorization failed: no api key bound")
				c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
					Error:   "unauthorized",
					Message: "API key missing",
					Code:    "UNAUTHENTICATED",
				})
				c.Abort()
				return
			}

			logger.Debug("project authorization failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithProjectID(c.Request.Context(), projectID))

		logger.Debug("project authorization successful",
			slog.Int64("project_id", projectID))

		c.Next()
	}
}

// extractBearerToken parses an Authorization header of the form
// "Bearer <token>" (case-insensitive scheme). Returns false for a missing,
// malformed, or empty credential.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) ||
		!strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// explicitProjectID reads the caller-supplied project id, honoring the
// query > header > route param precedence. A nil result means no id was
// supplied anywhere.
func explicitProjectID(c *gin.Context) (*int64, error) {
	raw := c.Query("projectId")
	if raw == "" {
		raw = c.GetHeader(headerProjectID)
	}
	if raw == "" {
		raw = c.Param("projectId")
	}
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return nil, fmt.Errorf("invalid project id: must be a non-negative integer")
	}
	return &id, nil
}
