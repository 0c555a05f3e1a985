package app

import (
	"fmt"

	analyticsRepository "github.com/allisson/identity/internal/analytics/repository"
	analyticsUseCase "github.com/allisson/identity/internal/analytics/usecase"
)

// AnalyticsConfigRepository returns the analytics config repository based on database driver.
func (c *Container) AnalyticsConfigRepository() (analyticsUseCase.AnalyticsConfigRepository, error) {
	var err error
	c.analyticsRepoInit.Do(func() {
		c.analyticsRepo, err = c.initAnalyticsConfigRepository()
		if err != nil {
			c.initErrors["analyticsRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["analyticsRepo"]; exists {
		return nil, storedErr
	}
	return c.analyticsRepo, nil
}

// CounterRepository returns the Redis-backed counter repository.
// Returns nil when Redis is disabled in configuration.
func (c *Container) CounterRepository() (analyticsUseCase.CounterRepository, error) {
	var err error
	c.counterRepoInit.Do(func() {
		c.counterRepo, err = c.initCounterRepository()
		if err != nil {
			c.initErrors["counterRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["counterRepo"]; exists {
		return nil, storedErr
	}
	return c.counterRepo, nil
}

// AnalyticsConfigUseCase returns the analytics config use case.
func (c *Container) AnalyticsConfigUseCase() (analyticsUseCase.AnalyticsConfigUseCase, error) {
	var err error
	c.analyticsUCInit.Do(func() {
		c.analyticsUC, err = c.initAnalyticsConfigUseCase()
		if err != nil {
			c.initErrors["analyticsUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["analyticsUC"]; exists {
		return nil, storedErr
	}
	return c.analyticsUC, nil
}

// CounterUseCase returns the counter use case.
// Returns nil when Redis is disabled in configuration.
func (c *Container) CounterUseCase() (analyticsUseCase.CounterUseCase, error) {
	var err error
	c.counterUCInit.Do(func() {
		c.counterUC, err = c.initCounterUseCase()
		if err != nil {
			c.initErrors["counterUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["counterUC"]; exists {
		return nil, storedErr
	}
	return c.counterUC, nil
}

// initAnalyticsConfigRepository creates the analytics config repository instance.
func (c *Container) initAnalyticsConfigRepository() (analyticsUseCase.AnalyticsConfigRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for analytics config repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return analyticsRepository.NewMySQLAnalyticsConfigRepository(db), nil
	case "postgres":
		return analyticsRepository.NewPostgreSQLAnalyticsConfigRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCounterRepository creates the counter repository instance.
func (c *Container) initCounterRepository() (analyticsUseCase.CounterRepository, error) {
	client, err := c.RedisClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get redis client for counter repository: %w", err)
	}

	if client == nil {
		return nil, nil
	}

	return analyticsRepository.NewRedisCounterRepository(client), nil
}

// initAnalyticsConfigUseCase creates the analytics config use case.
func (c *Container) initAnalyticsConfigUseCase() (analyticsUseCase.AnalyticsConfigUseCase, error) {
	configRepo, err := c.AnalyticsConfigRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics config repository for analytics config use case: %w", err)
	}

	return analyticsUseCase.NewAnalyticsConfigUseCase(configRepo), nil
}

// initCounterUseCase creates the counter use case.
func (c *Container) initCounterUseCase() (analyticsUseCase.CounterUseCase, error) {
	counterRepo, err := c.CounterRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get counter repository for counter use case: %w", err)
	}

	if counterRepo == nil {
		return nil, nil
	}

	return analyticsUseCase.NewCounterUseCase(counterRepo), nil
}
