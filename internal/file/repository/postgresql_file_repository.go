package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
)

// PostgreSQLFileRepository handles file record persistence for PostgreSQL.
type PostgreSQLFileRepository struct {
	db *sql.DB
}

// NewPostgreSQLFileRepository creates a new PostgreSQLFileRepository.
func NewPostgreSQLFileRepository(db *sql.DB) *PostgreSQLFileRepository {
	return &PostgreSQLFileRepository{db: db}
}

// Create inserts a new file record.
func (r *PostgreSQLFileRepository) Create(ctx context.Context, file *domain.File) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO files (id, name, bucket_id, size, mime_type, project_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query, file.ID, file.Name, file.BucketID,
		file.Size, file.MimeType, file.ProjectID, file.CreatedAt, file.UpdatedAt)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrFileReference
		}
		return apperrors.Wrap(err, "failed to create file")
	}
	return nil
}

// GetByID retrieves a file record by id.
func (r *PostgreSQLFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, bucket_id, size, mime_type, project_id, created_at, updated_at
			  FROM files WHERE id = $1`

	var file domain.File
	err := querier.QueryRowContext(ctx, query, id).Scan(&file.ID, &file.Name, &file.BucketID,
		&file.Size, &file.MimeType, &file.ProjectID, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get file")
	}
	return &file, nil
}

// Update modifies an existing file record.
func (r *PostgreSQLFileRepository) Update(ctx context.Context, file *domain.File) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE files SET name = $1, bucket_id = $2, size = $3, mime_type = $4,
			  project_id = $5, updated_at = $6 WHERE id = $7`

	result, err := querier.ExecContext(ctx, query, file.Name, file.BucketID, file.Size,
		file.MimeType, file.ProjectID, file.UpdatedAt, file.ID)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrFileReference
		}
		return apperrors.Wrap(err, "failed to update file")
	}

	return checkAffectedRows(result, domain.ErrFileNotFound)
}

// Delete removes a file record.
func (r *PostgreSQLFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete file")
	}
	return checkAffectedRows(result, domain.ErrFileNotFound)
}

// ListByProject retrieves a project's file records ordered by id with pagination.
func (r *PostgreSQLFileRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.File, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, bucket_id, size, mime_type, project_id, created_at, updated_at
			  FROM files WHERE project_id = $1
			  ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list files")
	}
	defer rows.Close()

	files := []*domain.File{}
	for rows.Next() {
		var file domain.File
		err := rows.Scan(&file.ID, &file.Name, &file.BucketID, &file.Size, &file.MimeType,
			&file.ProjectID, &file.CreatedAt, &file.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan file")
		}
		files = append(files, &file)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate files")
	}

	return files, nil
}
