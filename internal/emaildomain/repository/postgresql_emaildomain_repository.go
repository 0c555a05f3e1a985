// Package repository provides data persistence implementations for email domains.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/identity/internal/database"
	"github.com/allisson/identity/internal/emaildomain/domain"
	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLEmailDomainRepository handles email domain persistence for PostgreSQL.
type PostgreSQLEmailDomainRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmailDomainRepository creates a new PostgreSQLEmailDomainRepository.
func NewPostgreSQLEmailDomainRepository(db *sql.DB) *PostgreSQLEmailDomainRepository {
	return &PostgreSQLEmailDomainRepository{db: db}
}

// Create inserts a new email domain and fills in the generated id.
func (r *PostgreSQLEmailDomainRepository) Create(ctx context.Context, emailDomain *domain.EmailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO email_domains (domain, project_id, verified, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := querier.QueryRowContext(ctx, query, emailDomain.Domain, emailDomain.ProjectID,
		emailDomain.Verified, emailDomain.CreatedAt, emailDomain.UpdatedAt).
		Scan(&emailDomain.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrEmailDomainAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrEmailDomainReference
		}
		return apperrors.Wrap(err, "failed to create email domain")
	}
	return nil
}

// GetByID retrieves an email domain by id.
func (r *PostgreSQLEmailDomainRepository) GetByID(ctx context.Context, id int64) (*domain.EmailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain, project_id, verified, created_at, updated_at
			  FROM email_domains WHERE id = $1`

	var emailDomain domain.EmailDomain
	err := querier.QueryRowContext(ctx, query, id).Scan(&emailDomain.ID, &emailDomain.Domain,
		&emailDomain.ProjectID, &emailDomain.Verified, &emailDomain.CreatedAt, &emailDomain.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmailDomainNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get email domain")
	}
	return &emailDomain, nil
}

// Update modifies an existing email domain.
func (r *PostgreSQLEmailDomainRepository) Update(ctx context.Context, emailDomain *domain.EmailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE email_domains SET domain = $1, project_id = $2, verified = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query, emailDomain.Domain, emailDomain.ProjectID,
		emailDomain.Verified, emailDomain.UpdatedAt, emailDomain.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrEmailDomainAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrEmailDomainReference
		}
		return apperrors.Wrap(err, "failed to update email domain")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrEmailDomainNotFound
	}
	return nil
}

// Delete removes an email domain.
func (r *PostgreSQLEmailDomainRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM email_domains WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete email domain")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrEmailDomainNotFound
	}
	return nil
}

// ListByProject retrieves a project's email domains ordered by id with pagination.
func (r *PostgreSQLEmailDomainRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.EmailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain, project_id, verified, created_at, updated_at
			  FROM email_domains WHERE project_id = $1
			  ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list email domains")
	}
	defer rows.Close()

	domains := []*domain.EmailDomain{}
	for rows.Next() {
		var emailDomain domain.EmailDomain
		err := rows.Scan(&emailDomain.ID, &emailDomain.Domain, &emailDomain.ProjectID,
			&emailDomain.Verified, &emailDomain.CreatedAt, &emailDomain.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan email domain")
		}
		domains = append(domains, &emailDomain)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate email domains")
	}

	return domains, nil
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
