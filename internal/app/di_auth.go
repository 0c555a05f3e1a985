package app

import (
	"fmt"

	authService "github.com/allisson/identity/internal/auth/service"
	authUseCase "github.com/allisson/identity/internal/auth/usecase"
)

// TokenService returns the bearer token signing and verification service.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewJWTService(
			c.config.JWTSecret,
			c.config.JWTIssuer,
			c.config.JWTExpiration,
		)
	})
	return c.tokenService
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUCInit.Do(func() {
		c.authUC, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUC"]; exists {
		return nil, storedErr
	}
	return c.authUC, nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	apiKeyUC, err := c.APIKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key use case for auth use case: %w", err)
	}

	userUC, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth use case: %w", err)
	}

	return authUseCase.NewAuthUseCase(apiKeyUC, c.TokenService(), userUC, c.Logger()), nil
}
