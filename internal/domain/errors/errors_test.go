package errors

import (
	"net/http"
	"testing"

	"matcha/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      *BaseError
		wantHTTP int
		wantCode string
	}{
		{name: "password mismatch", err: ErrPasswordMismatch, wantHTTP: http.StatusBadRequest, wantCode: "PASSWORD_MISMATCH"},
		{name: "validation failed", err: ErrValidationFailed, wantHTTP: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "username taken", err: ErrUsernameTaken, wantHTTP: http.StatusConflict, wantCode: "USERNAME_TAKEN"},
		{name: "email taken", err: ErrEmailTaken, wantHTTP: http.StatusConflict, wantCode: "EMAIL_TAKEN"},
		{name: "credentials taken", err: ErrCredentialsTaken, wantHTTP: http.StatusConflict, wantCode: "CREDENTIALS_TAKEN"},
		{name: "duplicate credentials", err: ErrDuplicateCredentials, wantHTTP: http.StatusConflict, wantCode: "DUPLICATE_CREDENTIALS"},
		{name: "internal", err: ErrInternalError, wantHTTP: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantHTTP, tt.err.HTTPCode())
			assert.Equal(t, tt.wantCode, tt.err.ErrorCode())
			assert.NotEmpty(t, tt.err.Message())
		})
	}
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrUsernameTaken.WrapMessage("registering alice")

	assert.True(t, errors.Is(wrapped, ErrUsernameTaken))

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestBaseError_WithDetailsDoesNotMutate(t *testing.T) {
	detailed := ErrEmailTaken.WithDetails("email=alice@example.com")

	assert.Equal(t, "email=alice@example.com", detailed.Details())
	assert.Empty(t, ErrEmailTaken.Details())
	assert.Equal(t, ErrEmailTaken.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	dbErr := NewDatabaseExecuteError(cause, "failed to create user")

	assert.Equal(t, http.StatusInternalServerError, dbErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", dbErr.ErrorCode())

	// The user-facing message never carries the cause; Unwrap keeps it
	// reachable for errors.Is checks and operator logs.
	assert.Equal(t, "Internal Server Error", dbErr.Message())
	assert.True(t, errors.Is(dbErr, cause))
}
