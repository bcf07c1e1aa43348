package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwraps(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create campus: %w", NewAlreadyExistsError("campus with this name already exists"))

	assert.True(t, errors.Is(err, ErrResourceAlreadyExists))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "campus with this name already exists", MessageOf(err, "fallback"))
}

func TestMessageOfFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", MessageOf(ErrResourceNotFound, "fallback"))
	assert.Equal(t, "fallback", MessageOf(&CustomError{Err: ErrBadRequest}, "fallback"))
}

func TestIsMatchesAnyTarget(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name is required")
	assert.True(t, Is(err, ErrResourceNotFound, ErrValidationFailed))
	assert.False(t, Is(err, ErrResourceNotFound, ErrUnauthorized))
}
