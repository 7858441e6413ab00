package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "internal server error")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrUnauthorized, CodeOf(Unauthorized(nil)))
	assert.Equal(t, ErrConflict, CodeOf(Conflict("duplicate email", nil)))
	assert.Equal(t, ErrNotFound, CodeOf(NotFound("clinic", nil)))

	// Codes survive another layer of wrapping.
	wrapped := fmt.Errorf("create clinic: %w", Unauthorized(nil))
	assert.Equal(t, ErrUnauthorized, CodeOf(wrapped))
	assert.True(t, Is(wrapped, ErrUnauthorized))

	// Unknown errors default to internal.
	assert.Equal(t, ErrInternal, CodeOf(fmt.Errorf("boom")))
}
