package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	apiKeyUseCase "github.com/allisson/identity/internal/apikey/usecase"
)

// RunRevokeAPIKey revokes an API key by id. Revocation takes effect on the
// next validation; tokens already minted from the key live until expiry.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeAPIKey(
	ctx context.Context,
	apiKeyUC apiKeyUseCase.APIKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id string,
) error {
	keyID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid api key id: %w", err)
	}

	logger.Info("revoking api key", slog.String("api_key_id", keyID.String()))

	if err := apiKeyUC.Revoke(ctx, keyID); err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "API key %s revoked\n", keyID)

	logger.Info("api key revoked successfully", slog.String("api_key_id", keyID.String()))
	return nil
}
