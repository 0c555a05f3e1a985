package app

import (
	"fmt"

	analyticsHTTP "github.com/allisson/identity/internal/analytics/http"
	apikeyHTTP "github.com/allisson/identity/internal/apikey/http"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	emailDomainHTTP "github.com/allisson/identity/internal/emaildomain/http"
	fileHTTP "github.com/allisson/identity/internal/file/http"
	"github.com/allisson/identity/internal/http"
	projectHTTP "github.com/allisson/identity/internal/project/http"
	userHTTP "github.com/allisson/identity/internal/user/http"
)

// initHandlers assembles the resource handlers mounted on the API server.
func (c *Container) initHandlers() (http.Handlers, error) {
	logger := c.Logger()

	authUC, err := c.AuthUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get auth use case for handlers: %w", err)
	}

	projectUC, err := c.ProjectUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get project use case for handlers: %w", err)
	}

	userUC, err := c.UserUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get user use case for handlers: %w", err)
	}

	apiKeyUC, err := c.APIKeyUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get api key use case for handlers: %w", err)
	}

	fileProviderUC, err := c.FileProviderUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get file provider use case for handlers: %w", err)
	}

	fileBucketUC, err := c.FileBucketUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get file bucket use case for handlers: %w", err)
	}

	fileUC, err := c.FileUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get file use case for handlers: %w", err)
	}

	analyticsUC, err := c.AnalyticsConfigUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get analytics config use case for handlers: %w", err)
	}

	counterUC, err := c.CounterUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get counter use case for handlers: %w", err)
	}

	emailDomainUC, err := c.EmailDomainUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get email domain use case for handlers: %w", err)
	}

	handlers := http.Handlers{
		Token:           authHTTP.NewTokenHandler(authUC, logger),
		Project:         projectHTTP.NewProjectHandler(projectUC, logger),
		User:            userHTTP.NewUserHandler(userUC, logger),
		APIKey:          apikeyHTTP.NewAPIKeyHandler(apiKeyUC, logger),
		FileProvider:    fileHTTP.NewFileProviderHandler(fileProviderUC, logger),
		FileBucket:      fileHTTP.NewFileBucketHandler(fileBucketUC, logger),
		File:            fileHTTP.NewFileHandler(fileUC, logger),
		AnalyticsConfig: analyticsHTTP.NewAnalyticsConfigHandler(analyticsUC, logger),
		EmailDomain:     emailDomainHTTP.NewEmailDomainHandler(emailDomainUC, logger),
	}

	// Counter routes are only mounted when the Redis-backed store is enabled.
	if counterUC != nil {
		handlers.Counter = analyticsHTTP.NewCounterHandler(counterUC, logger)
	}

	return handlers, nil
}
