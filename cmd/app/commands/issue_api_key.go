package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	apiKeyDomain "github.com/allisson/identity/internal/apikey/domain"
	apiKeyUseCase "github.com/allisson/identity/internal/apikey/usecase"
)

// RunIssueAPIKey issues a new API key bound to a project and prints the raw
// key. The raw key is shown exactly once; only its hash is stored.
//
// Requirements: Database must be migrated and accessible.
func RunIssueAPIKey(
	ctx context.Context,
	apiKeyUC apiKeyUseCase.APIKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	environment string,
	description string,
	scopesCSV string,
	projectID int64,
	format string,
) error {
	logger.Info("issuing new api key",
		slog.String("environment", environment),
		slog.Int64("project_id", projectID),
	)

	output, err := apiKeyUC.Issue(ctx, &apiKeyDomain.CreateAPIKeyInput{
		Environment: environment,
		Description: description,
		Scopes:      parseScopes(scopesCSV),
		ProjectID:   projectID,
	})
	if err != nil {
		return fmt.Errorf("failed to issue api key: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(map[string]any{
			"id":          output.APIKey.ID.String(),
			"key":         output.RawKey,
			"environment": output.APIKey.Environment,
			"project_id":  output.APIKey.ProjectID,
			"scopes":      output.APIKey.Scopes,
		})
	} else {
		_, _ = fmt.Fprintf(writer, "API key issued\n")
		_, _ = fmt.Fprintf(writer, "ID:          %s\n", output.APIKey.ID)
		_, _ = fmt.Fprintf(writer, "Key:         %s\n", output.RawKey)
		_, _ = fmt.Fprintf(writer, "Environment: %s\n", output.APIKey.Environment)
		_, _ = fmt.Fprintf(writer, "Project ID:  %d\n", output.APIKey.ProjectID)
		_, _ = fmt.Fprintf(writer, "\nStore the key now. It cannot be retrieved again.\n")
	}

	logger.Info("api key issued successfully",
		slog.String("api_key_id", output.APIKey.ID.String()),
		slog.Int64("project_id", output.APIKey.ProjectID),
	)

	return nil
}

// parseScopes splits a comma-separated scope list and trims whitespace.
func parseScopes(scopesCSV string) []string {
	if scopesCSV == "" {
		return nil
	}

	parts := strings.Split(scopesCSV, ",")
	scopes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			scopes = append(scopes, trimmed)
		}
	}
	return scopes
}
