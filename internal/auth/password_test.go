package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2!", hash)

	assert.True(t, ComparePassword(hash, "hunter2!"))
	assert.False(t, ComparePassword(hash, "hunter3!"))
	assert.False(t, ComparePassword("", "hunter2!"))
}
