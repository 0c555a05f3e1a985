package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
)

// MySQLFileProviderRepository handles file provider persistence for MySQL.
type MySQLFileProviderRepository struct {
	db *sql.DB
}

// NewMySQLFileProviderRepository creates a new MySQLFileProviderRepository.
func NewMySQLFileProviderRepository(db *sql.DB) *MySQLFileProviderRepository {
	return &MySQLFileProviderRepository{db: db}
}

// Create inserts a new file provider and fills in the generated id.
func (r *MySQLFileProviderRepository) Create(ctx context.Context, provider *domain.FileProvider) error {
	querier := database.GetTx(ctx, r.db)

	configJSON, err := json.Marshal(provider.Config)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal provider config")
	}

	query := `INSERT INTO file_providers (name, kind, config, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		provider.Name, provider.Kind, configJSON, provider.CreatedAt, provider.UpdatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrFileProviderAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create file provider")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted id")
	}
	provider.ID = id
	return nil
}

// GetByID retrieves a file provider by id.
func (r *MySQLFileProviderRepository) GetByID(ctx context.Context, id int64) (*domain.FileProvider, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, kind, config, created_at, updated_at
			  FROM file_providers WHERE id = ?`

	return scanFileProvider(querier.QueryRowContext(ctx, query, id))
}

// Update modifies an existing file provider.
func (r *MySQLFileProviderRepository) Update(ctx context.Context, provider *domain.FileProvider) error {
	querier := database.GetTx(ctx, r.db)

	configJSON, err := json.Marshal(provider.Config)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal provider config")
	}

	query := `UPDATE file_providers SET name = ?, kind = ?, config = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		provider.Name, provider.Kind, configJSON, provider.UpdatedAt, provider.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrFileProviderAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update file provider")
	}

	return checkAffectedRows(result, domain.ErrFileProviderNotFound)
}

// Delete removes a file provider.
func (r *MySQLFileProviderRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM file_providers WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete file provider")
	}
	return checkAffectedRows(result, domain.ErrFileProviderNotFound)
}

// List retrieves file providers ordered by id with pagination.
func (r *MySQLFileProviderRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.FileProvider, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, kind, config, created_at, updated_at
			  FROM file_providers ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list file providers")
	}
	defer rows.Close()

	providers := []*domain.FileProvider{}
	for rows.Next() {
		provider, err := scanFileProviderRow(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate file providers")
	}

	return providers, nil
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
