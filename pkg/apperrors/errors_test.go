package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDatabaseError, "repo", "query failed", http.StatusInternalServerError)

	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsMatchesSentinels(t *testing.T) {
	// Services wrap repository sentinels with fmt.Errorf("%w") and the
	// chain must still match.
	wrapped := fmt.Errorf("loading job: %w", ErrJobNotFound)
	assert.True(t, Is(wrapped, ErrJobNotFound))
	assert.False(t, Is(wrapped, ErrServiceNotFound))
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrEmailAlreadyExists)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Equal(t, CodeAlreadyExists, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestDomainErrorShape(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrJobNotOpen.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrEmailNotVerified.HTTPCode)

	// The not-verified error must carry the resend hint.
	details, ok := ErrEmailNotVerified.Details.(map[string]bool)
	require.True(t, ok)
	assert.True(t, details["needsVerification"])
}

func TestInternalErrorHidesNothingInternally(t *testing.T) {
	cause := errors.New("disk full")
	err := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
	assert.Equal(t, CodeInternalError, err.Code)
	assert.True(t, Is(err, cause))
}
