package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidArgument(t *testing.T) {
	assert.True(t, IsInvalidArgument(ErrInvalidArgument))
	assert.False(t, IsInvalidArgument(ErrUnreadableInput))
	assert.False(t, IsInvalidArgument(nil))

	// Wrapped errors should still match.
	wrapped := fmt.Errorf("top n must be positive: %w", ErrInvalidArgument)
	assert.True(t, IsInvalidArgument(wrapped))
}

func TestIsUnreadableInput(t *testing.T) {
	assert.True(t, IsUnreadableInput(ErrUnreadableInput))
	assert.False(t, IsUnreadableInput(ErrInvalidArgument))

	wrapped := fmt.Errorf("reading chat.txt: %w", ErrUnreadableInput)
	assert.True(t, IsUnreadableInput(wrapped))
}
