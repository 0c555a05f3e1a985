package app

import (
	"fmt"

	projectRepository "github.com/allisson/identity/internal/project/repository"
	projectUseCase "github.com/allisson/identity/internal/project/usecase"
)

// ProjectRepository returns the project repository based on database driver.
func (c *Container) ProjectRepository() (projectUseCase.ProjectRepository, error) {
	var err error
	c.projectRepoInit.Do(func() {
		c.projectRepo, err = c.initProjectRepository()
		if err != nil {
			c.initErrors["projectRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectRepo"]; exists {
		return nil, storedErr
	}
	return c.projectRepo, nil
}

// ProjectUseCase returns the project use case.
func (c *Container) ProjectUseCase() (projectUseCase.ProjectUseCase, error) {
	var err error
	c.projectUCInit.Do(func() {
		c.projectUC, err = c.initProjectUseCase()
		if err != nil {
			c.initErrors["projectUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectUC"]; exists {
		return nil, storedErr
	}
	return c.projectUC, nil
}

// initProjectRepository creates the project repository instance.
func (c *Container) initProjectRepository() (projectUseCase.ProjectRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for project repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return projectRepository.NewMySQLProjectRepository(db), nil
	case "postgres":
		return projectRepository.NewPostgreSQLProjectRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProjectUseCase creates the project use case with all its dependencies.
func (c *Container) initProjectUseCase() (projectUseCase.ProjectUseCase, error) {
	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for project use case: %w", err)
	}

	return projectUseCase.NewProjectUseCase(projectRepo), nil
}
