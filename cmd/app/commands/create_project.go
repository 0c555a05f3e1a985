package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	projectDomain "github.com/allisson/identity/internal/project/domain"
	projectUseCase "github.com/allisson/identity/internal/project/usecase"
)

// RunCreateProject creates a new project and prints its id.
//
// Requirements: Database must be migrated and accessible.
func RunCreateProject(
	ctx context.Context,
	projectUC projectUseCase.ProjectUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	format string,
) error {
	logger.Info("creating new project", slog.String("name", name))

	project, err := projectUC.Create(ctx, &projectDomain.CreateProjectInput{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(map[string]any{
			"id":   project.ID,
			"name": project.Name,
		})
	} else {
		_, _ = fmt.Fprintf(writer, "Project created\n")
		_, _ = fmt.Fprintf(writer, "ID:   %d\n", project.ID)
		_, _ = fmt.Fprintf(writer, "Name: %s\n", project.Name)
	}

	logger.Info("project created successfully",
		slog.Int64("project_id", project.ID),
		slog.String("name", project.Name),
	)

	return nil
}
