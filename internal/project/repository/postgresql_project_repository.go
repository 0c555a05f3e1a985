// Package repository provides data persistence implementations for project entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/project/domain"
)

// PostgreSQLProjectRepository handles project persistence for PostgreSQL.
type PostgreSQLProjectRepository struct {
	db *sql.DB
}

// NewPostgreSQLProjectRepository creates a new PostgreSQLProjectRepository.
func NewPostgreSQLProjectRepository(db *sql.DB) *PostgreSQLProjectRepository {
	return &PostgreSQLProjectRepository{db: db}
}

// Create inserts a new project and fills in the generated id.
func (r *PostgreSQLProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO projects (name, created_at, updated_at)
			  VALUES ($1, $2, $3) RETURNING id`

	err := querier.QueryRowContext(ctx, query, project.Name, project.CreatedAt, project.UpdatedAt).
		Scan(&project.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProjectAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create project")
	}
	return nil
}

// GetByID retrieves a project by id.
func (r *PostgreSQLProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM projects WHERE id = $1`

	return r.scanProject(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a project by its unique name.
func (r *PostgreSQLProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM projects WHERE name = $1`

	return r.scanProject(querier.QueryRowContext(ctx, query, name))
}

// Update modifies an existing project.
func (r *PostgreSQLProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE projects SET name = $1, updated_at = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, project.Name, project.UpdatedAt, project.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProjectAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update project")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project. Associated api_keys and project_users rows are
// removed by ON DELETE CASCADE.
func (r *PostgreSQLProjectRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete project")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// List retrieves projects ordered by id with pagination.
func (r *PostgreSQLProjectRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Project, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM projects
			  ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list projects")
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project")
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate projects")
	}

	return projects, nil
}

func (r *PostgreSQLProjectRepository) scanProject(row *sql.Row) (*domain.Project, error) {
	var project domain.Project
	err := row.Scan(&project.ID, &project.Name, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project")
	}
	return &project, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
