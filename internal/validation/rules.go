// Package validation provides custom validation rules shared across modules.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/identity/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// domainNameRegex matches a DNS hostname with at least two labels
	domainNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9\-]*[a-z0-9])?)+$`)

	// scopeNameRegex matches scope identifiers such as "read" or "files:read"
	scopeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_.:\-]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format. Surrounding whitespace is ignored because
// callers normalize addresses after validation.
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(strings.TrimSpace(s))
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// DomainName validates that a string is a plausible DNS domain name. Case and
// surrounding whitespace are ignored because callers store domains lowercased.
var DomainName = validation.NewStringRuleWithError(
	func(s string) bool {
		return domainNameRegex.MatchString(strings.ToLower(strings.TrimSpace(s)))
	},
	validation.NewError("validation_domain_name", "must be a valid domain name"),
)

// ScopeName validates API key scope identifiers.
var ScopeName = validation.NewStringRuleWithError(
	func(s string) bool {
		return scopeNameRegex.MatchString(s)
	},
	validation.NewError("validation_scope_name", "must be a valid scope name"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
