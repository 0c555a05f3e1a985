package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/allisson/identity/internal/auth/domain"
	apperrors "github.com/allisson/identity/internal/errors"
)

// jwtClaims is the wire representation of domain.TokenClaims.
type jwtClaims struct {
	Email     string   `json:"email,omitempty"`
	KeyHash   string   `json:"key_hash,omitempty"`
	ProjectID *int64   `json:"project_id,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// jwtService implements TokenService using HS256-signed JWTs.
type jwtService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// NewJWTService creates a new TokenService signing with the given HMAC secret.
func NewJWTService(secret, issuer string, expiration time.Duration) TokenService {
	return &jwtService{
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: expiration,
	}
}

// CreateFromProjectInfo signs a delegated API-key session token.
func (s *jwtService) CreateFromProjectInfo(keyHash string, projectID int64, scopes []string) (string, error) {
	claims := jwtClaims{
		KeyHash:          keyHash,
		ProjectID:        &projectID,
		Scopes:           scopes,
		RegisteredClaims: s.registeredClaims(),
	}
	return s.sign(claims)
}

// CreateFromUserEmail signs a user session token.
func (s *jwtService) CreateFromUserEmail(email string) (string, error) {
	claims := jwtClaims{
		Email:            email,
		RegisteredClaims: s.registeredClaims(),
	}
	return s.sign(claims)
}

// Verify parses and validates a token. Expired, mis-signed, and malformed
// tokens all produce the same error.
func (s *jwtService) Verify(tokenStr string) (*domain.TokenClaims, error) {
	claims := &jwtClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidAuthToken
	}

	return &domain.TokenClaims{
		Email:     claims.Email,
		KeyHash:   claims.KeyHash,
		ProjectID: claims.ProjectID,
		Scopes:    claims.Scopes,
	}, nil
}

func (s *jwtService) registeredClaims() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		Issuer:    s.issuer,
	}
}

func (s *jwtService) sign(claims jwtClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}
