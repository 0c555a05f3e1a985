package app

import (
	"fmt"

	apiKeyRepository "github.com/allisson/identity/internal/apikey/repository"
	apiKeyService "github.com/allisson/identity/internal/apikey/service"
	apiKeyUseCase "github.com/allisson/identity/internal/apikey/usecase"
)

// KeyService returns the API key generation and hashing service.
func (c *Container) KeyService() apiKeyService.KeyService {
	c.keyServiceInit.Do(func() {
		c.keyService = apiKeyService.NewKeyService(c.config.APIKeyHashSecret)
	})
	return c.keyService
}

// APIKeyRepository returns the API key repository based on database driver.
func (c *Container) APIKeyRepository() (apiKeyUseCase.APIKeyRepository, error) {
	var err error
	c.apiKeyRepoInit.Do(func() {
		c.apiKeyRepo, err = c.initAPIKeyRepository()
		if err != nil {
			c.initErrors["apiKeyRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyRepo"]; exists {
		return nil, storedErr
	}
	return c.apiKeyRepo, nil
}

// APIKeyUseCase returns the API key use case wrapped with business metrics.
func (c *Container) APIKeyUseCase() (apiKeyUseCase.APIKeyUseCase, error) {
	var err error
	c.apiKeyUCInit.Do(func() {
		c.apiKeyUC, err = c.initAPIKeyUseCase()
		if err != nil {
			c.initErrors["apiKeyUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyUC"]; exists {
		return nil, storedErr
	}
	return c.apiKeyUC, nil
}

// initAPIKeyRepository creates the API key repository instance.
func (c *Container) initAPIKeyRepository() (apiKeyUseCase.APIKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for api key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return apiKeyRepository.NewMySQLAPIKeyRepository(db), nil
	case "postgres":
		return apiKeyRepository.NewPostgreSQLAPIKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAPIKeyUseCase creates the API key use case with all its dependencies.
func (c *Container) initAPIKeyUseCase() (apiKeyUseCase.APIKeyUseCase, error) {
	apiKeyRepo, err := c.APIKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key repository for api key use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for api key use case: %w", err)
	}

	useCase := apiKeyUseCase.NewAPIKeyUseCase(apiKeyRepo, c.KeyService())
	return apiKeyUseCase.NewAPIKeyUseCaseWithMetrics(useCase, businessMetrics), nil
}
