package dto

import (
	"time"

	"github.com/allisson/identity/internal/emaildomain/domain"
)

// EmailDomainResponse represents an email domain in API responses.
type EmailDomainResponse struct {
	ID        int64     `json:"id"`
	Domain    string    `json:"domain"`
	ProjectID int64     `json:"project_id"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListEmailDomainsResponse represents a paginated list of email domains.
type ListEmailDomainsResponse struct {
	EmailDomains []EmailDomainResponse `json:"email_domains"`
}

// MapEmailDomainToResponse converts a domain email domain to its response representation.
func MapEmailDomainToResponse(emailDomain *domain.EmailDomain) EmailDomainResponse {
	return EmailDomainResponse{
		ID:        emailDomain.ID,
		Domain:    emailDomain.Domain,
		ProjectID: emailDomain.ProjectID,
		Verified:  emailDomain.Verified,
		CreatedAt: emailDomain.CreatedAt,
		UpdatedAt: emailDomain.UpdatedAt,
	}
}

// MapEmailDomainsToListResponse converts a slice of email domains to a list response.
func MapEmailDomainsToListResponse(domains []*domain.EmailDomain) ListEmailDomainsResponse {
	response := ListEmailDomainsResponse{
		EmailDomains: make([]EmailDomainResponse, 0, len(domains)),
	}
	for _, emailDomain := range domains {
		response.EmailDomains = append(response.EmailDomains, MapEmailDomainToResponse(emailDomain))
	}
	return response
}
