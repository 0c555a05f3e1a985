package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/identity/internal/apikey/domain"
	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	userDomain "github.com/allisson/identity/internal/user/domain"
)

// mockAPIKeyUseCase is a mock implementation of APIKeyUseCase for testing.
type mockAPIKeyUseCase struct {
	mock.Mock
}

func (m *mockAPIKeyUseCase) Issue(ctx context.Context, input *domain.CreateAPIKeyInput) (*domain.IssueAPIKeyOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssueAPIKeyOutput), args.Error(1)
}

func (m *mockAPIKeyUseCase) Validate(ctx context.Context, rawKey string) (*domain.APIKey, error) {
	args := m.Called(ctx, rawKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *mockAPIKeyUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *mockAPIKeyUseCase) Revoke(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAPIKeyUseCase) RevokeByKey(ctx context.Context, rawKey string) error {
	args := m.Called(ctx, rawKey)
	return args.Error(0)
}

func (m *mockAPIKeyUseCase) RevokeAllForProject(ctx context.Context, projectID int64) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAPIKeyUseCase) List(ctx context.Context, projectID int64, offset, limit int) ([]*domain.APIKey, error) {
	args := m.Called(ctx, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.APIKey), args.Error(1)
}

// mockAuthUseCase is a mock implementation of AuthUseCase for testing.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, credential string) (*authDomain.Identity, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

func (m *mockAuthUseCase) AuthenticateUserCredentials(ctx context.Context, email, password string) (*authDomain.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

func (m *mockAuthUseCase) IssueTokenFromAPIKey(ctx context.Context, rawKey string) (string, error) {
	args := m.Called(ctx, rawKey)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) IssueTokenFromUserCredentials(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) AuthorizeProject(ctx context.Context, identity *authDomain.Identity, requested *int64) (int64, error) {
	args := m.Called(ctx, identity, requested)
	return args.Get(0).(int64), args.Error(1)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupAPIKeyRouter mirrors the server wiring: an identity-injecting stub in
// front of the handlers, with the project-scoped collection routes running
// through the project middleware.
func setupAPIKeyRouter(handler *APIKeyHandler, authUC *mockAuthUseCase, identity *authDomain.Identity) *gin.Engine {
	logger := createTestLogger()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if identity != nil {
			c.Request = c.Request.WithContext(authHTTP.WithIdentity(c.Request.Context(), identity))
		}
		c.Next()
	})

	router.POST("/v1/api-keys", handler.IssueHandler)

	scoped := router.Group("")
	scoped.Use(authHTTP.ProjectMiddleware(authUC, logger))
	scoped.GET("/v1/projects/:projectId/api-keys", handler.ListHandler)
	scoped.DELETE("/v1/projects/:projectId/api-keys", handler.RevokeAllForProjectHandler)

	return router
}

func apiKeyIdentity(projectID int64) *authDomain.Identity {
	return &authDomain.Identity{
		Subject:   authDomain.SubjectAPIKey,
		KeyHash:   "aabbccdd",
		ProjectID: &projectID,
		Scopes:    []string{"admin"},
	}
}

func TestAPIKeyHandler_ListHandler(t *testing.T) {
	t.Run("Success_OwnProject", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := apiKeyIdentity(7)

		mockAuth.On("AuthorizeProject", mock.Anything, identity, mock.MatchedBy(func(requested *int64) bool {
			return requested != nil && *requested == 7
		})).Return(int64(7), nil).Once()
		mockUC.On("List", mock.Anything, int64(7), 0, 50).
			Return([]*domain.APIKey{{ID: uuid.New(), Environment: "production", ProjectID: 7}}, nil).Once()

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects/7/api-keys", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockAuth.AssertExpectations(t)
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_OtherProjectDenied", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := apiKeyIdentity(3)

		mockAuth.On("AuthorizeProject", mock.Anything, identity, mock.Anything).
			Return(int64(0), authDomain.ErrProjectAccessDenied).Once()

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects/7/api-keys", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockUC.AssertNotCalled(t, "List")
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())

		router := setupAPIKeyRouter(handler, mockAuth, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects/7/api-keys", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUC.AssertNotCalled(t, "List")
		mockAuth.AssertNotCalled(t, "AuthorizeProject")
	})
}

func TestAPIKeyHandler_RevokeAllForProjectHandler(t *testing.T) {
	t.Run("Success_OwnProject", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := apiKeyIdentity(7)

		mockAuth.On("AuthorizeProject", mock.Anything, identity, mock.Anything).
			Return(int64(7), nil).Once()
		mockUC.On("RevokeAllForProject", mock.Anything, int64(7)).Return(int64(5), nil).Once()

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/projects/7/api-keys", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(5), response["revoked"])
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_OtherProjectDenied", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := apiKeyIdentity(3)

		mockAuth.On("AuthorizeProject", mock.Anything, identity, mock.Anything).
			Return(int64(0), authDomain.ErrProjectAccessDenied).Once()

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/projects/7/api-keys", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockUC.AssertNotCalled(t, "RevokeAllForProject")
	})
}

func TestAPIKeyHandler_IssueHandler(t *testing.T) {
	issueBody := func(projectID int64) io.Reader {
		body, _ := json.Marshal(map[string]any{
			"environment": "production",
			"scopes":      []string{"read"},
			"project_id":  projectID,
		})
		return bytes.NewReader(body)
	}

	t.Run("Success_OwnProject", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := apiKeyIdentity(7)

		output := &domain.IssueAPIKeyOutput{
			APIKey: &domain.APIKey{ID: uuid.New(), Environment: "production", Scopes: []string{"read"}, ProjectID: 7},
			RawKey: "raw-key-material",
		}
		mockUC.On("Issue", mock.Anything, mock.MatchedBy(func(input *domain.CreateAPIKeyInput) bool {
			return input.ProjectID == 7
		})).Return(output, nil).Once()

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/api-keys", issueBody(7))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("Success_SuperAdmin", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := &authDomain.Identity{
			Subject: authDomain.SubjectUser,
			User:    &userDomain.User{ID: 1, Type: userDomain.UserTypeSuperAdmin},
		}

		output := &domain.IssueAPIKeyOutput{
			APIKey: &domain.APIKey{ID: uuid.New(), Environment: "production", Scopes: []string{"read"}, ProjectID: 9},
			RawKey: "raw-key-material",
		}
		mockUC.On("Issue", mock.Anything, mock.Anything).Return(output, nil).Once()

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/api-keys", issueBody(9))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_OtherProjectDenied", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := apiKeyIdentity(3)

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/api-keys", issueBody(7))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockUC.AssertNotCalled(t, "Issue")
	})

	t.Run("Error_UserUnlinkedProject", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockAuth := &mockAuthUseCase{}
		handler := NewAPIKeyHandler(mockUC, createTestLogger())
		identity := &authDomain.Identity{
			Subject: authDomain.SubjectUser,
			User:    &userDomain.User{ID: 2, Type: userDomain.UserTypeUser, ProjectIDs: []int64{3}},
		}

		router := setupAPIKeyRouter(handler, mockAuth, identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/api-keys", issueBody(7))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockUC.AssertNotCalled(t, "Issue")
	})
}
