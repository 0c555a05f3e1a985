package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/file/domain"
)

// PostgreSQLFileBucketRepository handles file bucket persistence for PostgreSQL.
type PostgreSQLFileBucketRepository struct {
	db *sql.DB
}

// NewPostgreSQLFileBucketRepository creates a new PostgreSQLFileBucketRepository.
func NewPostgreSQLFileBucketRepository(db *sql.DB) *PostgreSQLFileBucketRepository {
	return &PostgreSQLFileBucketRepository{db: db}
}

// Create inserts a new file bucket and fills in the generated id.
func (r *PostgreSQLFileBucketRepository) Create(ctx context.Context, bucket *domain.FileBucket) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO file_buckets (name, provider_id, project_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		bucket.Name, bucket.ProviderID, bucket.ProjectID, bucket.CreatedAt, bucket.UpdatedAt).
		Scan(&bucket.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrFileBucketAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrFileBucketReference
		}
		return apperrors.Wrap(err, "failed to create file bucket")
	}
	return nil
}

// GetByID retrieves a file bucket by id.
func (r *PostgreSQLFileBucketRepository) GetByID(ctx context.Context, id int64) (*domain.FileBucket, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, provider_id, project_id, created_at, updated_at
			  FROM file_buckets WHERE id = $1`

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
func (r *PostgreSQLFileBucketRepository) Update(ctx context.Context, bucket *domain.FileBucket) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE file_buckets SET name = $1, provider_id = $2, project_id = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		bucket.Name, bucket.ProviderID, bucket.ProjectID, bucket.UpdatedAt, bucket.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrFileBucketAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrFileBucketReference
		}
		return apperrors.Wrap(err, "failed to update file bucket")
	}

	return checkAffectedRows(result, domain.ErrFileBucketNotFound)
}

// Delete removes a file bucket.
func (r *PostgreSQLFileBucketRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM file_buckets WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete file bucket")
	}
	return checkAffectedRows(result, domain.ErrFileBucketNotFound)
}

// ListByProject retrieves a project's file buckets ordered by id with pagination.
func (r *PostgreSQLFileBucketRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.FileBucket, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, provider_id, project_id, created_at, updated_at
			  FROM file_buckets WHERE project_id = $1
			  ORDER BY id LIMIT $2 OFFSET $3`

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
