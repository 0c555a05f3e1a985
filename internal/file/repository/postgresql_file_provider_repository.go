// Package repository provides data persistence implementations for file
// providers, buckets, and file records.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
)

// PostgreSQLFileProviderRepository handles file provider persistence for PostgreSQL.
type PostgreSQLFileProviderRepository struct {
	db *sql.DB
}

// NewPostgreSQLFileProviderRepository creates a new PostgreSQLFileProviderRepository.
func NewPostgreSQLFileProviderRepository(db *sql.DB) *PostgreSQLFileProviderRepository {
	return &PostgreSQLFileProviderRepository{db: db}
}

// Create inserts a new file provider and fills in the generated id.
func (r *PostgreSQLFileProviderRepository) Create(ctx context.Context, provider *domain.FileProvider) error {
	querier := database.GetTx(ctx, r.db)

	configJSON, err := json.Marshal(provider.Config)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal provider config")
	}

	query := `INSERT INTO file_providers (name, kind, config, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err = querier.QueryRowContext(ctx, query,
		provider.Name, provider.Kind, configJSON, provider.CreatedAt, provider.UpdatedAt).
		Scan(&provider.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrFileProviderAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create file provider")
	}
	return nil
}

// GetByID retrieves a file provider by id.
func (r *PostgreSQLFileProviderRepository) GetByID(ctx context.Context, id int64) (*domain.FileProvider, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, kind, config, created_at, updated_at
			  FROM file_providers WHERE id = $1`

	return scanFileProvider(querier.QueryRowContext(ctx, query, id))
}

// Update modifies an existing file provider.
func (r *PostgreSQLFileProviderRepository) Update(ctx context.Context, provider *domain.FileProvider) error {
	querier := database.GetTx(ctx, r.db)

	configJSON, err := json.Marshal(provider.Config)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal provider config")
	}

	query := `UPDATE file_providers SET name = $1, kind = $2, config = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		provider.Name, provider.Kind, configJSON, provider.UpdatedAt, provider.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrFileProviderAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update file provider")
	}

	return checkAffectedRows(result, domain.ErrFileProviderNotFound)
}

// Delete removes a file provider.
func (r *PostgreSQLFileProviderRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM file_providers WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete file provider")
	}
	return checkAffectedRows(result, domain.ErrFileProviderNotFound)
}

// List retrieves file providers ordered by id with pagination.
func (r *PostgreSQLFileProviderRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.FileProvider, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, kind, config, created_at, updated_at
			  FROM file_providers ORDER BY id LIMIT $1 OFFSET $2`

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

func scanFileProvider(row *sql.Row) (*domain.FileProvider, error) {
	var provider domain.FileProvider
	var configJSON []byte

	err := row.Scan(&provider.ID, &provider.Name, &provider.Kind, &configJSON,
		&provider.CreatedAt, &provider.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileProviderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get file provider")
	}

	if err := json.Unmarshal(configJSON, &provider.Config); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal provider config")
	}
	return &provider, nil
}

func scanFileProviderRow(rows *sql.Rows) (*domain.FileProvider, error) {
	var provider domain.FileProvider
	var configJSON []byte

	err := rows.Scan(&provider.ID, &provider.Name, &provider.Kind, &configJSON,
		&provider.CreatedAt, &provider.UpdatedAt)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan file provider")
	}

	if err := json.Unmarshal(configJSON, &provider.Config); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal provider config")
	}
	return &provider, nil
}

func checkAffectedRows(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return notFound
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
