package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/identity/internal/analytics/domain"
	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLAnalyticsConfigRepository handles analytics config persistence for PostgreSQL.
type PostgreSQLAnalyticsConfigRepository struct {
	db *sql.DB
}

// NewPostgreSQLAnalyticsConfigRepository creates a new PostgreSQLAnalyticsConfigRepository.
func NewPostgreSQLAnalyticsConfigRepository(db *sql.DB) *PostgreSQLAnalyticsConfigRepository {
	return &PostgreSQLAnalyticsConfigRepository{db: db}
}

// Create inserts a new analytics config and fills in the generated id.
func (r *PostgreSQLAnalyticsConfigRepository) Create(ctx context.Context, config *domain.AnalyticsConfig) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO analytics_configs (project_id, provider, site_id, enabled, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := querier.QueryRowContext(ctx, query, config.ProjectID, config.Provider,
		config.SiteID, config.Enabled, config.CreatedAt, config.UpdatedAt).
		Scan(&config.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrAnalyticsConfigAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrAnalyticsConfigReference
		}
		return apperrors.Wrap(err, "failed to create analytics config")
	}
	return nil
}

// GetByID retrieves an analytics config by id.
func (r *PostgreSQLAnalyticsConfigRepository) GetByID(ctx context.Context, id int64) (*domain.AnalyticsConfig, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, project_id, provider, site_id, enabled, created_at, updated_at
			  FROM analytics_configs WHERE id = $1`

	return scanAnalyticsConfig(querier.QueryRowContext(ctx, query, id))
}

// GetByProject retrieves the analytics config for a project.
func (r *PostgreSQLAnalyticsConfigRepository) GetByProject(
	ctx context.Context,
	projectID int64,
) (*domain.AnalyticsConfig, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, project_id, provider, site_id, enabled, created_at, updated_at
			  FROM analytics_configs WHERE project_id = $1`

	return scanAnalyticsConfig(querier.QueryRowContext(ctx, query, projectID))
}

// Update modifies an existing analytics config.
func (r *PostgreSQLAnalyticsConfigRepository) Update(ctx context.Context, config *domain.AnalyticsConfig) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE analytics_configs SET provider = $1, site_id = $2, enabled = $3, updated_at = $4
			  WHERE id = $5`

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
func (r *PostgreSQLAnalyticsConfigRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM analytics_configs WHERE id = $1`, id)
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
func (r *PostgreSQLAnalyticsConfigRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.AnalyticsConfig, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, project_id, provider, site_id, enabled, created_at, updated_at
			  FROM analytics_configs ORDER BY id LIMIT $1 OFFSET $2`

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

func scanAnalyticsConfig(row *sql.Row) (*domain.AnalyticsConfig, error) {
	var config domain.AnalyticsConfig
	err := row.Scan(&config.ID, &config.ProjectID, &config.Provider, &config.SiteID,
		&config.Enabled, &config.CreatedAt, &config.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnalyticsConfigNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get analytics config")
	}
	return &config, nil
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
