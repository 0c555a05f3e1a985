// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/user/domain"
)

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user and fills in the generated id.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (name, email, password, type, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Password, user.Type, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by id, including linked project ids.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password, type, created_at, updated_at
			  FROM users WHERE id = $1`

	user, err := scanUser(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return r.withProjectIDs(ctx, user)
}

// GetByEmail retrieves a user by email, including linked project ids.
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password, type, created_at, updated_at
			  FROM users WHERE email = $1`

	user, err := scanUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, err
	}
	return r.withProjectIDs(ctx, user)
}

// Update modifies an existing user.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET name = $1, email = $2, password = $3, type = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Type, user.UpdatedAt, user.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user. Project links are removed by ON DELETE CASCADE.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List retrieves users ordered by id with pagination. Project links are not
// loaded for list responses.
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password, type, created_at, updated_at
			  FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.Type,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

// LinkProject grants the user access to a project. Linking twice is a no-op.
func (r *PostgreSQLUserRepository) LinkProject(ctx context.Context, userID, projectID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO project_users (user_id, project_id)
			  VALUES ($1, $2) ON CONFLICT DO NOTHING`

	if _, err := querier.ExecContext(ctx, query, userID, projectID); err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrUserProjectLink
		}
		return apperrors.Wrap(err, "failed to link user to project")
	}
	return nil
}

// UnlinkProject revokes the user's access to a project.
func (r *PostgreSQLUserRepository) UnlinkProject(ctx context.Context, userID, projectID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM project_users WHERE user_id = $1 AND project_id = $2`

	if _, err := querier.ExecContext(ctx, query, userID, projectID); err != nil {
		return apperrors.Wrap(err, "failed to unlink user from project")
	}
	return nil
}

// withProjectIDs loads the user's linked project ids.
func (r *PostgreSQLUserRepository) withProjectIDs(ctx context.Context, user *domain.User) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT project_id FROM project_users WHERE user_id = $1 ORDER BY project_id`

	rows, err := querier.QueryContext(ctx, query, user.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get user project links")
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		if err := rows.Scan(&projectID); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project link")
		}
		user.ProjectIDs = append(user.ProjectIDs, projectID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate project links")
	}

	return user, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Type,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return &user, nil
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
