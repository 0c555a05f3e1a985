package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	"github.com/allisson/identity/internal/httputil"
)

// RequireProjectAccess enforces that the authenticated identity may act on
// the given project. SUPERADMIN users pass for any project, other users only
// for linked projects, and API key identities only for their bound project.
// On failure it writes the error response, aborts the request, and returns
// false; handlers must stop when it does.
func RequireProjectAccess(c *gin.Context, projectID int64, logger *slog.Logger) bool {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok || identity == nil {
		logger.Debug("project access check failed: no identity in context")
		httputil.HandleErrorGin(c, authDomain.ErrInvalidAuthToken, logger)
		c.Abort()
		return false
	}

	if !identity.HasProjectAccess(projectID) {
		logger.Debug("project access denied",
			slog.String("subject", string(identity.Subject)),
			slog.Int64("project_id", projectID))
		httputil.HandleErrorGin(c, authDomain.ErrProjectAccessDenied, logger)
		c.Abort()
		return false
	}

	return true
}
