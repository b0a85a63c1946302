package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret1", "digest must not embed the plaintext")

	assert.True(t, CheckPassword("secret1", digest))
	assert.False(t, CheckPassword("secret2", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two hashes of the same password must differ by salt")
}
