package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/identity/internal/user/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var userColumns = []string{"id", "name", "email", "password", "type", "created_at", "updated_at"}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_InsertFillsGeneratedID", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		now := time.Now().UTC()
		user := &domain.User{
			Name:      "Alice",
			Email:     "alice@example.com",
			Password:  "hashed-password",
			Type:      domain.UserTypeAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Alice", "alice@example.com", "hashed-password", domain.UserTypeAdmin, now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_users_email"`))

		err := repo.Create(ctx, &domain.User{Email: "alice@example.com"})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LoadsProjectLinks", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "Alice", "alice@example.com", "hashed-password",
					domain.UserTypeAdmin, now, now))
		mock.ExpectQuery("SELECT project_id FROM project_users").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"project_id"}).
				AddRow(int64(3)).
				AddRow(int64(7)))

		user, err := repo.GetByEmail(ctx, "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, domain.UserTypeAdmin, user.Type)
		assert.Equal(t, []int64{3, 7}, user.ProjectIDs)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Updated", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		now := time.Now().UTC()
		user := &domain.User{
			ID:        1,
			Name:      "Alice",
			Email:     "alice@example.com",
			Password:  "hashed-password",
			Type:      domain.UserTypeSuperAdmin,
			UpdatedAt: now,
		}

		mock.ExpectExec("UPDATE users SET").
			WithArgs("Alice", "alice@example.com", "hashed-password",
				domain.UserTypeSuperAdmin, now, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, user))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("UPDATE users SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.User{ID: 99})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Deleted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("DELETE FROM users WHERE id").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("DELETE FROM users WHERE id").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock := setupMockDB(t)
	repo := NewPostgreSQLUserRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "Alice", "alice@example.com", "hash-a", domain.UserTypeAdmin, now, now).
			AddRow(int64(2), "Bob", "bob@example.com", "hash-b", domain.UserTypeUser, now, now))

	users, err := repo.List(ctx, 0, 10)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

func TestPostgreSQLUserRepository_ProjectLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Link", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("INSERT INTO project_users").
			WithArgs(int64(1), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.LinkProject(ctx, 1, 7))
	})

	t.Run("Error_UnknownProject", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("INSERT INTO project_users").
			WillReturnError(errors.New(`pq: insert or update on table "project_users" violates foreign key constraint "fk_project_users_project"`))

		err := repo.LinkProject(ctx, 1, 99)

		assert.ErrorIs(t, err, domain.ErrUserProjectLink)
	})

	t.Run("Success_Unlink", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("DELETE FROM project_users").
			WithArgs(int64(1), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UnlinkProject(ctx, 1, 7))
	})
}
