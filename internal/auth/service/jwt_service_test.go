package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/identity/internal/auth/domain"
)

func TestJWTService(t *testing.T) {
	secret := "test-jwt-secret"
	issuer := "identity"
	expiration := time.Hour

	t.Run("Success_UserSessionRoundTrip", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, expiration)

		token, err := svc.CreateFromUserEmail("admin@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Empty(t, claims.KeyHash)
		assert.Nil(t, claims.ProjectID)
		assert.True(t, claims.IsUserSession())
	})

	t.Run("Success_APIKeySessionRoundTrip", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, expiration)

		token, err := svc.CreateFromProjectInfo("a1b2c3d4", 42, []string{"read", "write"})
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Empty(t, claims.Email)
		assert.Equal(t, "a1b2c3d4", claims.KeyHash)
		require.NotNil(t, claims.ProjectID)
		assert.Equal(t, int64(42), *claims.ProjectID)
		assert.Equal(t, []string{"read", "write"}, claims.Scopes)
		assert.False(t, claims.IsUserSession())
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, -time.Minute)

		token, err := svc.CreateFromUserEmail("admin@example.com")
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domain.ErrInvalidAuthToken)
	})

	t.Run("Error_WrongSecret", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, expiration)
		other := NewJWTService("another-secret", issuer, expiration)

		token, err := other.CreateFromUserEmail("admin@example.com")
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domain.ErrInvalidAuthToken)
	})

	t.Run("Error_WrongIssuer", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, expiration)
		other := NewJWTService(secret, "another-issuer", expiration)

		token, err := other.CreateFromUserEmail("admin@example.com")
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domain.ErrInvalidAuthToken)
	})

	t.Run("Error_MalformedToken", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, expiration)

		claims, err := svc.Verify("not-a-token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domain.ErrInvalidAuthToken)
	})

	t.Run("Error_EmptyToken", func(t *testing.T) {
		svc := NewJWTService(secret, issuer, expiration)

		claims, err := svc.Verify("")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domain.ErrInvalidAuthToken)
	})
}
