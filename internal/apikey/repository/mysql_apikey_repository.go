package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/apikey/domain"
	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// MySQLAPIKeyRepository handles API key persistence for MySQL.
type MySQLAPIKeyRepository struct {
	db *sql.DB
}

// NewMySQLAPIKeyRepository creates a new MySQLAPIKeyRepository.
func NewMySQLAPIKeyRepository(db *sql.DB) *MySQLAPIKeyRepository {
	return &MySQLAPIKeyRepository{db: db}
}

// Create inserts a new API key.
func (r *MySQLAPIKeyRepository) Create(ctx context.Context, apiKey *domain.APIKey) error {
	querier := database.GetTx(ctx, r.db)

	scopesJSON, err := json.Marshal(apiKey.Scopes)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal scopes")
	}

	query := `INSERT INTO api_keys (id, hash, environment, description, scopes, project_id, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		apiKey.ID, apiKey.Hash, apiKey.Environment, apiKey.Description,
		scopesJSON, apiKey.ProjectID, apiKey.CreatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrAPIKeyAlreadyExists
		}
		if isMySQLForeignKeyViolation(err) {
			return domain.ErrAPIKeyProjectLink
		}
		return apperrors.Wrap(err, "failed to create api key")
	}
	return nil
}

// GetByID retrieves an API key by id.
func (r *MySQLAPIKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hash, environment, description, scopes, project_id, created_at
			  FROM api_keys WHERE id = ?`

	return scanAPIKey(querier.QueryRowContext(ctx, query, id))
}

// GetByHash retrieves an API key by its stored hash.
func (r *MySQLAPIKeyRepository) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hash, environment, description, scopes, project_id, created_at
			  FROM api_keys WHERE hash = ?`

	return scanAPIKey(querier.QueryRowContext(ctx, query, hash))
}

// Delete removes an API key by id.
func (r *MySQLAPIKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM api_keys WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api key")
	}
	return checkAffected(result)
}

// DeleteByHash removes an API key by its stored hash.
func (r *MySQLAPIKeyRepository) DeleteByHash(ctx context.Context, hash string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM api_keys WHERE hash = ?`, hash)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api key")
	}
	return checkAffected(result)
}

// DeleteByProject removes every API key bound to the given project.
// Returns the number of keys removed.
func (r *MySQLAPIKeyRepository) DeleteByProject(ctx context.Context, projectID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM api_keys WHERE project_id = ?`, projectID)
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
func (r *MySQLAPIKeyRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.APIKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hash, environment, description, scopes, project_id, created_at
			  FROM api_keys WHERE project_id = ?
			  ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list api keys")
	}
	defer rows.Close()

	return collectAPIKeys(rows)
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1062") || strings.Contains(errMsg, "duplicate entry")
}

// isMySQLForeignKeyViolation checks if the error is a MySQL foreign key violation.
func isMySQLForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1452") || strings.Contains(errMsg, "foreign key constraint")
}
