package app

import (
	"fmt"

	emailDomainRepository "github.com/allisson/identity/internal/emaildomain/repository"
	emailDomainUseCase "github.com/allisson/identity/internal/emaildomain/usecase"
)

// EmailDomainRepository returns the email domain repository based on database driver.
func (c *Container) EmailDomainRepository() (emailDomainUseCase.EmailDomainRepository, error) {
	var err error
	c.emailDomainRepoInit.Do(func() {
		c.emailDomainRepo, err = c.initEmailDomainRepository()
		if err != nil {
			c.initErrors["emailDomainRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["emailDomainRepo"]; exists {
		return nil, storedErr
	}
	return c.emailDomainRepo, nil
}

// EmailDomainUseCase returns the email domain use case.
func (c *Container) EmailDomainUseCase() (emailDomainUseCase.EmailDomainUseCase, error) {
	var err error
	c.emailDomainUCInit.Do(func() {
		c.emailDomainUC, err = c.initEmailDomainUseCase()
		if err != nil {
			c.initErrors["emailDomainUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["emailDomainUC"]; exists {
		return nil, storedErr
	}
	return c.emailDomainUC, nil
}

// initEmailDomainRepository creates the email domain repository instance.
func (c *Container) initEmailDomainRepository() (emailDomainUseCase.EmailDomainRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for email domain repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return emailDomainRepository.NewMySQLEmailDomainRepository(db), nil
	case "postgres":
		return emailDomainRepository.NewPostgreSQLEmailDomainRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEmailDomainUseCase creates the email domain use case.
func (c *Container) initEmailDomainUseCase() (emailDomainUseCase.EmailDomainUseCase, error) {
	domainRepo, err := c.EmailDomainRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get email domain repository for email domain use case: %w", err)
	}

	return emailDomainUseCase.NewEmailDomainUseCase(domainRepo), nil
}
