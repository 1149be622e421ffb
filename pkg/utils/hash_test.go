package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secret-pass", digest)

	assert.True(t, CheckPasswordHash("secret-pass", digest))
	assert.False(t, CheckPasswordHash("wrong-pass", digest))
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	// Salted, so each call produces a different digest
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("same-input", first))
	assert.True(t, CheckPasswordHash("same-input", second))
}

func TestCheckPasswordHash_MalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-digest"))
	assert.False(t, CheckPasswordHash("anything", ""))
}
