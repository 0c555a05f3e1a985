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

// MySQLEmailDomainRepository handles email domain persistence for MySQL.
type MySQLEmailDomainRepository struct {
	db *sql.DB
}

// NewMySQLEmailDomainRepository creates a new MySQLEmailDomainRepository.
func NewMySQLEmailDomainRepository(db *sql.DB) *MySQLEmailDomainRepository {
	return &MySQLEmailDomainRepository{db: db}
}

// Create inserts a new email domain and fills in the generated id.
func (r *MySQLEmailDomainRepository) Create(ctx context.Context, emailDomain *domain.EmailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO email_domains (domain, project_id, verified, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, emailDomain.Domain, emailDomain.ProjectID,
		emailDomain.Verified, emailDomain.CreatedAt, emailDomain.UpdatedAt)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrEmailDomainAlreadyExists
		}
		if isMySQLForeignKeyViolation(err) {
			return domain.ErrEmailDomainReference
		}
		return apperrors.Wrap(err, "failed to create email domain")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	emailDomain.ID = id
	return nil
}

// GetByID retrieves an email domain by id.
func (r *MySQLEmailDomainRepository) GetByID(ctx context.Context, id int64) (*domain.EmailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain, project_id, verified, created_at, updated_at
			  FROM email_domains WHERE id = ?`

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
func (r *MySQLEmailDomainRepository) Update(ctx context.Context, emailDomain *domain.EmailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE email_domains SET domain = ?, project_id = ?, verified = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, emailDomain.Domain, emailDomain.ProjectID,
		emailDomain.Verified, emailDomain.UpdatedAt, emailDomain.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrEmailDomainAlreadyExists
		}
		if isMySQLForeignKeyViolation(err) {
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
func (r *MySQLEmailDomainRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM email_domains WHERE id = ?`, id)
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
func (r *MySQLEmailDomainRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*domain.EmailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain, project_id, verified, created_at, updated_at
			  FROM email_domains WHERE project_id = ?
			  ORDER BY id LIMIT ? OFFSET ?`

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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry error.
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
