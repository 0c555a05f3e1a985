package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/identity/internal/apikey/domain"
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

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunIssueAPIKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_TextOutput", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		output := &domain.IssueAPIKeyOutput{
			APIKey: &domain.APIKey{
				ID:          uuid.New(),
				Environment: "production",
				Scopes:      []string{"read", "write"},
				ProjectID:   7,
			},
			RawKey: "raw-key-material",
		}
		mockUC.On("Issue", mock.Anything, mock.MatchedBy(func(input *domain.CreateAPIKeyInput) bool {
			return input.ProjectID == int64(7) &&
				input.Environment == "production" &&
				len(input.Scopes) == 2
		})).Return(output, nil).Once()

		var buf bytes.Buffer
		err := RunIssueAPIKey(ctx, mockUC, createTestLogger(), &buf,
			"production", "ci pipeline", "read, write", 7, "text")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "raw-key-material")
		assert.Contains(t, buf.String(), "Project ID:  7")
		mockUC.AssertExpectations(t)
	})

	t.Run("Success_JSONOutput", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		output := &domain.IssueAPIKeyOutput{
			APIKey: &domain.APIKey{ID: uuid.New(), Environment: "staging", ProjectID: 3},
			RawKey: "raw-key-material",
		}
		mockUC.On("Issue", mock.Anything, mock.Anything).Return(output, nil).Once()

		var buf bytes.Buffer
		err := RunIssueAPIKey(ctx, mockUC, createTestLogger(), &buf,
			"staging", "", "", 3, "json")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"project_id": 3`)
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_IssueFails", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		mockUC.On("Issue", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).Once()

		var buf bytes.Buffer
		err := RunIssueAPIKey(ctx, mockUC, createTestLogger(), &buf,
			"production", "", "", 7, "text")

		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestParseScopes(t *testing.T) {
	assert.Nil(t, parseScopes(""))
	assert.Equal(t, []string{"read", "write"}, parseScopes("read, write"))
	assert.Equal(t, []string{"read"}, parseScopes("read,,  "))
}
