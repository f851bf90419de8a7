package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t, "STORE: find sessions: connection refused", NewStoreError("find sessions", cause).Error())
	assert.Equal(t, "NOT_FOUND: user u1", NewNotFoundError("user u1").Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := NewExternalError("similarity", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	inner := NewStoreError("count", errors.New("boom"))
	wrapped := fmt.Errorf("dashboard: %w", inner)

	assert.True(t, IsType(wrapped, ErrorTypeStore))
	assert.False(t, IsType(wrapped, ErrorTypeExternal))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeStore))
	assert.False(t, IsType(nil, ErrorTypeStore))

	nested := NewInternalError("outer", NewValidationError("bad"))
	assert.True(t, IsType(nested, ErrorTypeValidation))
}
