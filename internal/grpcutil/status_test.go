package grpcutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	apperrors "github.com/allisson/identity/internal/errors"
)

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", apperrors.ErrNotFound, codes.NotFound},
		{"conflict", apperrors.ErrConflict, codes.AlreadyExists},
		{"invalid input", apperrors.ErrInvalidInput, codes.InvalidArgument},
		{"unauthorized", apperrors.ErrUnauthorized, codes.Unauthenticated},
		{"forbidden", apperrors.ErrForbidden, codes.PermissionDenied},
		{"failed precondition", apperrors.ErrFailedPrecondition, codes.FailedPrecondition},
		{"unknown", errors.New("boom"), codes.Unknown},
		{"wrapped not found", apperrors.Wrap(apperrors.ErrNotFound, "user"), codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFromError(tt.err))
		})
	}
}

func TestCodeName(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", CodeName(codes.NotFound))
	assert.Equal(t, "ALREADY_EXISTS", CodeName(codes.AlreadyExists))
	assert.Equal(t, "FAILED_PRECONDITION", CodeName(codes.FailedPrecondition))
	assert.Equal(t, "UNAUTHENTICATED", CodeName(codes.Unauthenticated))

	// Codes outside the wire enum collapse to UNKNOWN.
	assert.Equal(t, "UNKNOWN", CodeName(codes.DataLoss))
}
