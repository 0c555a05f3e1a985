// Package grpcutil maps domain errors to the gRPC status-code enum used on the
// inter-service wire. The HTTP surface embeds the code name in error payloads
// so both surfaces report the same error kind for the same failure.
package grpcutil

import (
	"google.golang.org/grpc/codes"

	apperrors "github.com/allisson/identity/internal/errors"
)

// CodeFromError maps a domain error to its gRPC status code.
//
// Mapping:
//   - ErrNotFound           -> NotFound
//   - ErrConflict           -> AlreadyExists
//   - ErrInvalidInput       -> InvalidArgument
//   - ErrUnauthorized       -> Unauthenticated
//   - ErrForbidden          -> PermissionDenied
//   - ErrFailedPrecondition -> FailedPrecondition
//   - anything else         -> Unknown
func CodeFromError(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case apperrors.Is(err, apperrors.ErrNotFound):
		return codes.NotFound
	case apperrors.Is(err, apperrors.ErrConflict):
		return codes.AlreadyExists
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return codes.InvalidArgument
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return codes.Unauthenticated
	case apperrors.Is(err, apperrors.ErrForbidden):
		return codes.PermissionDenied
	case apperrors.Is(err, apperrors.ErrFailedPrecondition):
		return codes.FailedPrecondition
	default:
		return codes.Unknown
	}
}

// CodeName returns the canonical SCREAMING_SNAKE_CASE name for the code
// (e.g. "NOT_FOUND", "ALREADY_EXISTS"). The codes package renders names in
// CamelCase via String(), so the wire representation is derived from the
// proto enum numbering instead.
func CodeName(code codes.Code) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return "UNKNOWN"
}

var codeNames = map[codes.Code]string{
	codes.OK:                 "OK",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Unauthenticated:    "UNAUTHENTICATED",
	codes.Unknown:            "UNKNOWN",
}
