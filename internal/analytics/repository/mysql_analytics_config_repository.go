package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/allisson/identity/internal/analytics/domain"
	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// MySQLAnalyticsConfigRepository handles analytics config persistence for MySQL.
type MySQLAnalyticsConfigRepository struct {
	db *sql.DB
}

// NewMySQLAnalyticsConfigRepository creates a new MySQLAnalyticsConfigRepository.
func NewMySQLAnalyticsConfigRepository(db *sql.DB) *MySQLAnalyticsConfigRepository {
	return &MySQLAnalyticsConfigRepository{db: db}
}

// Create inserts a new analytics config and fills in the generated id.
func (r *MySQLAnalyticsConfigRepository) Create(ctx context.Context, config *domain.AnalyticsConfig) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO analytics_configs (project_id, provider, site_id, enabled, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, config.ProjectID, config.Provider,
		config.SiteID, config.Enabled, config.CreatedAt, config.UpdatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrAnalyticsConfigAlreadyExists
		}
		if isMySQLForeignKeyViolation(err) {
			return domain.ErrAnalyticsConfigReference
		}
		return apperrors.Wrap(err, "failed to create analytics config")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted id")
	}
	config.ID = id
	return nil
}

// GetByID retrieves an analytics config by id.
func (r *MySQLAnalyticsConfigRepository) GetByID(ctx context.Context, id int64) (*domain.AnalyticsConfig, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, project_id, provider, site_id, enabled, created_at, updated_at
			  FROM analytics_configs WHERE id = ?`

	return scanAnalyticsConfig(querier.QueryRowContext(ctx, query, id))
}

// GetByProject retrieves the analytics config for a project.
func (r *MySQLAnalyticsConfigRepository) GetByProject(
	ctx context.Context,
	projectID int64,
) (*domain.AnalyticsConfig, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, project_id, provider, site_id, enabled, created_at, updated_at
			  FROM analytics_configs WHERE project_id = ?`

	return scanAnalyticsConfig(querier.QueryRowContext(ctx, query, projectID))
}

// Update modifies an existing analytics config.
func (r *MySQLAnalyticsConfigRepository) Update(ctx context.Context, config *domain.AnalyticsConfig) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE analytics_configs SET provider = ?, site_id = ?, enabled = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, config.Provider, config.SiteID,
		config.Enabled, config.UpdatedAt, config.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update analytics config")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrAnalyticsConfigNotFound
	}
	return nil
}

// Delete removes an analytics config.
func (r *MySQLAnalyticsConfigRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM analytics_configs WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete analytics config")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrAnalyticsConfigNotFound
	}
	return nil
}

// List retrieves analytics configs ordered by id with pagination.
func (r *MySQLAnalyticsConfigRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.AnalyticsConfig, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, project_id, provider, site_id, enabled, created_at, updated_at
			  FROM analytics_configs ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list analytics configs")
	}
	defer rows.Close()

	configs := []*domain.AnalyticsConfig{}
	for rows.Next() {
		var config domain.AnalyticsConfig
		err := rows.Scan(&config.ID, &config.ProjectID, &config.Provider, &config.SiteID,
			&config.Enabled, &config.CreatedAt, &config.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan analytics config")
		}
		configs = append(configs, &config)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate analytics configs")
	}

	return configs, nil
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
