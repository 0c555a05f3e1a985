package app

import (
	"fmt"

	fileRepository "github.com/allisson/identity/internal/file/repository"
	fileUseCase "github.com/allisson/identity/internal/file/usecase"
)

// FileProviderRepository returns the file provider repository based on database driver.
func (c *Container) FileProviderRepository() (fileUseCase.FileProviderRepository, error) {
	var err error
	c.fileProviderRepoInit.Do(func() {
		c.fileProviderRepo, err = c.initFileProviderRepository()
		if err != nil {
			c.initErrors["fileProviderRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fileProviderRepo"]; exists {
		return nil, storedErr
	}
	return c.fileProviderRepo, nil
}

// FileBucketRepository returns the file bucket repository based on database driver.
func (c *Container) FileBucketRepository() (fileUseCase.FileBucketRepository, error) {
	var err error
	c.fileBucketRepoInit.Do(func() {
		c.fileBucketRepo, err = c.initFileBucketRepository()
		if err != nil {
			c.initErrors["fileBucketRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fileBucketRepo"]; exists {
		return nil, storedErr
	}
	return c.fileBucketRepo, nil
}

// FileRepository returns the file record repository based on database driver.
func (c *Container) FileRepository() (fileUseCase.FileRepository, error) {
	var err error
	c.fileRepoInit.Do(func() {
		c.fileRepo, err = c.initFileRepository()
		if err != nil {
			c.initErrors["fileRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fileRepo"]; exists {
		return nil, storedErr
	}
	return c.fileRepo, nil
}

// FileProviderUseCase returns the file provider use case.
func (c *Container) FileProviderUseCase() (fileUseCase.FileProviderUseCase, error) {
	var err error
	c.fileProviderUCInit.Do(func() {
		c.fileProviderUC, err = c.initFileProviderUseCase()
		if err != nil {
			c.initErrors["fileProviderUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fileProviderUC"]; exists {
		return nil, storedErr
	}
	return c.fileProviderUC, nil
}

// FileBucketUseCase returns the file bucket use case.
func (c *Container) FileBucketUseCase() (fileUseCase.FileBucketUseCase, error) {
	var err error
	c.fileBucketUCInit.Do(func() {
		c.fileBucketUC, err = c.initFileBucketUseCase()
		if err != nil {
			c.initErrors["fileBucketUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fileBucketUC"]; exists {
		return nil, storedErr
	}
	return c.fileBucketUC, nil
}

// FileUseCase returns the file record use case.
func (c *Container) FileUseCase() (fileUseCase.FileUseCase, error) {
	var err error
	c.fileUCInit.Do(func() {
		c.fileUC, err = c.initFileUseCase()
		if err != nil {
			c.initErrors["fileUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fileUC"]; exists {
		return nil, storedErr
	}
	return c.fileUC, nil
}

// initFileProviderRepository creates the file provider repository instance.
func (c *Container) initFileProviderRepository() (fileUseCase.FileProviderRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for file provider repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return fileRepository.NewMySQLFileProviderRepository(db), nil
	case "postgres":
		return fileRepository.NewPostgreSQLFileProviderRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFileBucketRepository creates the file bucket repository instance.
func (c *Container) initFileBucketRepository() (fileUseCase.FileBucketRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for file bucket repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return fileRepository.NewMySQLFileBucketRepository(db), nil
	case "postgres":
		return fileRepository.NewPostgreSQLFileBucketRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFileRepository creates the file record repository instance.
func (c *Container) initFileRepository() (fileUseCase.FileRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for file repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return fileRepository.NewMySQLFileRepository(db), nil
	case "postgres":
		return fileRepository.NewPostgreSQLFileRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFileProviderUseCase creates the file provider use case.
func (c *Container) initFileProviderUseCase() (fileUseCase.FileProviderUseCase, error) {
	providerRepo, err := c.FileProviderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get file provider repository for file provider use case: %w", err)
	}

	return fileUseCase.NewFileProviderUseCase(providerRepo), nil
}

// initFileBucketUseCase creates the file bucket use case.
func (c *Container) initFileBucketUseCase() (fileUseCase.FileBucketUseCase, error) {
	bucketRepo, err := c.FileBucketRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get file bucket repository for file bucket use case: %w", err)
	}

	return fileUseCase.NewFileBucketUseCase(bucketRepo), nil
}

// initFileUseCase creates the file record use case.
func (c *Container) initFileUseCase() (fileUseCase.FileUseCase, error) {
	fileRepo, err := c.FileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get file repository for file use case: %w", err)
	}

	return fileUseCase.NewFileUseCase(fileRepo), nil
}
