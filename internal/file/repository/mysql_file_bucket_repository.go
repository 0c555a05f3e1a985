package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
)

// MySQLFileBucketRepository handles file bucket persistence for MySQL.
type MySQLFileBucketRepository struct {
	db *sql.DB
}

// NewMySQLFileBucketRepository creates a new MySQLFileBucketRepository.
func NewMySQLFileBucketRepository(db *sql.DB) *MySQLFileBucketRepository {
	return &MySQLFileBucketRepository{db: db}
}

// Create inserts a new file bucket and fills in the generated id.
func (r *MySQLFileBucketRepository) Create(ctx context.Context, bucket *domain.FileBucket) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO file_buckets (name, provider_id, project_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		bucket.Name, bucket.ProviderID, bucket.ProjectID, bucket.CreatedAt, bucket.UpdatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrFileBucketAlreadyExists
		}
		if isMySQLForeignKeyViolation(err) {
			return domain.ErrFileBucketReference
		}
		return apperrors.Wrap(err, "failed to create file bucket")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted id")
	}
	bucket.ID = id
	return nil
}

// GetByID retrieves a file bucket by id.
func (r *MySQLFileBucketRepository) GetByID(ctx context.Context, id int64) (*domain.FileBucket, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, provider_id, project_id, created_at, updated_at
			  FROM file_buckets WHERE id = ?`

	var bucket domain.FileBucket
	err := querier.QueryRowContext(ctx, query, id).Scan(&bucket.ID, &bucket.Name,
		&bucket.ProviderID, &bucket.ProjectID, &bucket.CreatedAt, &bucket.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileBucketNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get file bucket")
	}
	return &bucket, nil
}

// Update modifies an existing file bucket.
func (r *MySQLFileBucketRepository) Update(ctx context.Context, bucket *domain.FileBucket) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE file_buckets SET name = ?, provider_id = ?, project_id = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		bucket.Name, bucket.ProviderID, bucket.ProjectID, bucket.UpdatedAt, bucket.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrFileBucketAlreadyExists
		}
		if isMySQLForeignKeyViolation(err) {
			return domain.ErrFileBucketReference
		}
		return apperrors.Wrap(err, "failed to update file bucket")
	}

	return checkAffectedRows(result, domain.ErrFileBucketNotFound)
}

// Delete removes a file bucket.
func (r *MySQLFileBucketRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM file_buckets WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete file bucket")
	}
	return checkAffectedRows(result, domain.ErrFileBucketNotFound)
}

// ListByProject retrieves a project's file buckets ordered by id with pagination.
func (r *MySQLFileBucketRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.FileBucket, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, provider_id, project_id, created_at, updated_at
			  FROM file_buckets WHERE project_id = ?
			  ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list file buckets")
	}
	defer rows.Close()

	buckets := []*domain.FileBucket{}
	for rows.Next() {
		var bucket domain.FileBucket
		err := rows.Scan(&bucket.ID, &bucket.Name, &bucket.ProviderID, &bucket.ProjectID,
			&bucket.CreatedAt, &bucket.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan file bucket")
		}
		buckets = append(buckets, &bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate file buckets")
	}

	return buckets, nil
}
