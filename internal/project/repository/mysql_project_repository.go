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

// MySQLProjectRepository handles project persistence for MySQL.
type MySQLProjectRepository struct {
	db *sql.DB
}

// NewMySQLProjectRepository creates a new MySQLProjectRepository.
func NewMySQLProjectRepository(db *sql.DB) *MySQLProjectRepository {
	return &MySQLProjectRepository{db: db}
}

// Create inserts a new project and fills in the generated id.
func (r *MySQLProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO projects (name, created_at, updated_at) VALUES (?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, project.Name, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrProjectAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create project")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted project id")
	}
	project.ID = id
	return nil
}

// GetByID retrieves a project by id.
func (r *MySQLProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM projects WHERE id = ?`

	return r.scanProject(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a project by its unique name.
func (r *MySQLProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM projects WHERE name = ?`

	return r.scanProject(querier.QueryRowContext(ctx, query, name))
}

// Update modifies an existing project.
func (r *MySQLProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE projects SET name = ?, updated_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, project.Name, project.UpdatedAt, project.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLProjectRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
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
func (r *MySQLProjectRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Project, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM projects
			  ORDER BY id LIMIT ? OFFSET ?`

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

func (r *MySQLProjectRepository) scanProject(row *sql.Row) (*domain.Project, error) {
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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
