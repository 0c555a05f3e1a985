package domain

// TokenClaims is the application payload carried inside a signed bearer token.
// Exactly one of Email (user session) or KeyHash (delegated API-key session)
// is set.
type TokenClaims struct {
	// Email identifies a user session subject.
	Email string
	// KeyHash identifies a delegated API-key session subject.
	KeyHash string
	// ProjectID is the project bound to the delegated API key.
	ProjectID *int64
	// Scopes lists the permissions carried over from the API key.
	Scopes []string
}

// IsUserSession reports whether the claims describe a user session.
func (c *TokenClaims) IsUserSession() bool {
	return c.Email != ""
}
