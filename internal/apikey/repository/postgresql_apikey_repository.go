// Package repository provides data persistence implementations for API keys.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/apikey/domain"
	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLAPIKeyRepository handles API key persistence for PostgreSQL.
type PostgreSQLAPIKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLAPIKeyRepository creates a new PostgreSQLAPIKeyRepository.
func NewPostgreSQLAPIKeyRepository(db *sql.DB) *PostgreSQLAPIKeyRepository {
	return &PostgreSQLAPIKeyRepository{db: db}
}

// Create inserts a new API key.
func (r *PostgreSQLAPIKeyRepository) Create(ctx context.Context, apiKey *domain.APIKey) error {
	querier := database.GetTx(ctx, r.db)

	scopesJSON, err := json.Marshal(apiKey.Scopes)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal scopes")
	}

	query := `INSERT INTO api_keys (id, hash, environment, description, scopes, project_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = querier.ExecContext(ctx, query,
		apiKey.ID, apiKey.Hash, apiKey.Environment, apiKey.Description,
		scopesJSON, apiKey.ProjectID, apiKey.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrAPIKeyAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrAPIKeyProjectLink
		}
		return apperrors.Wrap(err, "failed to create api key")
	}
	return nil
}

// GetByID retrieves an API key by id.
func (r *PostgreSQLAPIKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hash, environment, description, scopes, project_id, created_at
			  FROM api_keys WHERE id = $1`

	return scanAPIKey(querier.QueryRowContext(ctx, query, id))
}

// GetByHash retrieves an API key by its stored hash.
func (r *PostgreSQLAPIKeyRepository) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hash, environment, description, scopes, project_id, created_at
			  FROM api_keys WHERE hash = $1`

	return scanAPIKey(querier.QueryRowContext(ctx, query, hash))
}

// Delete removes an API key by id.
func (r *PostgreSQLAPIKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM api_keys WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api key")
	}
	return checkAffected(result)
}

// DeleteByHash removes an API key by its stored hash.
func (r *PostgreSQLAPIKeyRepository) DeleteByHash(ctx context.Context, hash string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM api_keys WHERE hash = $1`, hash)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api key")
	}
	return checkAffected(result)
}

// DeleteByProject removes every API key bound to the given project.
// Returns the number of keys removed.
func (r *PostgreSQLAPIKeyRepository) DeleteByProject(ctx context.Context, projectID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM api_keys WHERE project_id = $1`, projectID)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete api keys")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows")
	}
	return rows, nil
}

// ListByProject retrieves API keys for a project ordered by creation time.
func (r *PostgreSQLAPIKeyRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.APIKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hash, environment, description, scopes, project_id, created_at
			  FROM api_keys WHERE project_id = $1
			  ORDER BY created_at LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list api keys")
	}
	defer rows.Close()

	return collectAPIKeys(rows)
}

func scanAPIKey(row *sql.Row) (*domain.APIKey, error) {
	var apiKey domain.APIKey
	var scopesJSON []byte

	err := row.Scan(&apiKey.ID, &apiKey.Hash, &apiKey.Environment, &apiKey.Description,
		&scopesJSON, &apiKey.ProjectID, &apiKey.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAPIKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get api key")
	}

	if err := json.Unmarshal(scopesJSON, &apiKey.Scopes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal scopes")
	}
	return &apiKey, nil
}

func collectAPIKeys(rows *sql.Rows) ([]*domain.APIKey, error) {
	apiKeys := []*domain.APIKey{}
	for rows.Next() {
		var apiKey domain.APIKey
		var scopesJSON []byte

		err := rows.Scan(&apiKey.ID, &apiKey.Hash, &apiKey.Environment, &apiKey.Description,
			&scopesJSON, &apiKey.ProjectID, &apiKey.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan api key")
		}
		if err := json.Unmarshal(scopesJSON, &apiKey.Scopes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal scopes")
		}
		apiKeys = append(apiKeys, &apiKey)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate api keys")
	}
	return apiKeys, nil
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrAPIKeyNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// isPostgreSQLForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func isPostgreSQLForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
