package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	"github.com/allisson/identity/internal/httputil"
	userDomain "github.com/allisson/identity/internal/user/domain"
)

// setupGuardRouter wires an identity-injecting stub in front of a handler
// that checks project access before responding, mirroring how resource
// handlers use the guard.
func setupGuardRouter(identity *authDomain.Identity, projectID int64) *gin.Engine {
	logger := createTestLogger()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if identity != nil {
			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		}
		c.Next()
	})
	router.GET("/resource", func(c *gin.Context) {
		if !RequireProjectAccess(c, projectID, logger) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequireProjectAccess(t *testing.T) {
	boundProject := int64(7)

	t.Run("Success_APIKeyBoundProject", func(t *testing.T) {
		identity := &authDomain.Identity{Subject: authDomain.SubjectAPIKey, ProjectID: &boundProject}
		router := setupGuardRouter(identity, 7)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success_SuperAdminAnyProject", func(t *testing.T) {
		identity := &authDomain.Identity{
			Subject: authDomain.SubjectUser,
			User:    &userDomain.User{ID: 1, Type: userDomain.UserTypeSuperAdmin},
		}
		router := setupGuardRouter(identity, 99)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success_UserLinkedProject", func(t *testing.T) {
		identity := &authDomain.Identity{
			Subject: authDomain.SubjectUser,
			User:    &userDomain.User{ID: 2, Type: userDomain.UserTypeAdmin, ProjectIDs: []int64{3, 7}},
		}
		router := setupGuardRouter(identity, 7)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_APIKeyOtherProject", func(t *testing.T) {
		identity := &authDomain.Identity{Subject: authDomain.SubjectAPIKey, ProjectID: &boundProject}
		router := setupGuardRouter(identity, 8)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "forbidden", response.Error)
	})

	t.Run("Error_UserUnlinkedProject", func(t *testing.T) {
		identity := &authDomain.Identity{
			Subject: authDomain.SubjectUser,
			User:    &userDomain.User{ID: 2, Type: userDomain.UserTypeUser, ProjectIDs: []int64{3}},
		}
		router := setupGuardRouter(identity, 7)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		router := setupGuardRouter(nil, 7)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
