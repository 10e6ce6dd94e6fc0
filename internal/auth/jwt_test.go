package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_SignAndVerify(t *testing.T) {
	t.Parallel()

	j := NewJWT("super-secret")

	tok, err := j.Sign("gardener@example.com")
	require.NoError(t, err)

	email, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "gardener@example.com", email)
}

func TestJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWT("right-secret").Sign("u@example.com")
	require.NoError(t, err)

	_, err = NewJWT("wrong-secret").Verify(tok)
	assert.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWT("k").Verify("not.a.jwt")
	assert.Error(t, err)
}

// The old scheme accepted any base64(email|timestamp) string as identity
// proof. Such tokens carry no signature and must be rejected.
func TestJWT_RejectsUnsignedLegacyToken(t *testing.T) {
	t.Parallel()

	legacy := "Z2FyZGVuZXJAZXhhbXBsZS5jb218MTc1NjY4NDgwMA==" // base64("gardener@example.com|1756684800")
	_, err := NewJWT("secret").Verify(legacy)
	assert.Error(t, err)
}
