package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hasher := NewHasher()

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, hasher.Check("secret1", digest))
	assert.False(t, hasher.Check("wrong", digest))
}

func TestHashUsesFreshSalt(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	// bcrypt salts every call, so equal plaintexts yield distinct digests.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestCheckMalformedDigest(t *testing.T) {
	hasher := NewHasher()
	assert.False(t, hasher.Check("secret1", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("secret1", ""))
}
