package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user and fills in the generated id.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (name, email, password, type, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Type, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted user id")
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by id, including linked project ids.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password, type, created_at, updated_at
			  FROM users WHERE id = ?`

	user, err := scanUser(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return r.withProjectIDs(ctx, user)
}

// GetByEmail retrieves a user by email, including linked project ids.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password, type, created_at, updated_at
			  FROM users WHERE email = ?`

	user, err := scanUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, err
	}
	return r.withProjectIDs(ctx, user)
}

// Update modifies an existing user.
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET name = ?, email = ?, password = ?, type = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Type, user.UpdatedAt, user.ID,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
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
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password, type, created_at, updated_at
			  FROM users ORDER BY id LIMIT ? OFFSET ?`

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
func (r *MySQLUserRepository) LinkProject(ctx context.Context, userID, projectID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO project_users (user_id, project_id) VALUES (?, ?)`

	if _, err := querier.ExecContext(ctx, query, userID, projectID); err != nil {
		if isMySQLForeignKeyViolation(err) {
			return domain.ErrUserProjectLink
		}
		return apperrors.Wrap(err, "failed to link user to project")
	}
	return nil
}

// UnlinkProject revokes the user's access to a project.
func (r *MySQLUserRepository) UnlinkProject(ctx context.Context, userID, projectID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM project_users WHERE user_id = ? AND project_id = ?`

	if _, err := querier.ExecContext(ctx, query, userID, projectID); err != nil {
		return apperrors.Wrap(err, "failed to unlink user from project")
	}
	return nil
}

// withProjectIDs loads the user's linked project ids.
func (r *MySQLUserRepository) withProjectIDs(ctx context.Context, user *domain.User) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT project_id FROM project_users WHERE user_id = ? ORDER BY project_id`

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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}

// isMySQLForeignKeyViolation checks if the error is a MySQL foreign key violation.
func isMySQLForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "foreign key constraint") || strings.Contains(errMsg, "error 1452")
}
