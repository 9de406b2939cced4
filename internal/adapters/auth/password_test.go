package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 64)

	hash, err := hasher.Hash(salt, "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, hasher.Compare(hash, salt, "supersecret"))
	require.Error(t, hasher.Compare(hash, salt, "wrongpass"))
	require.Error(t, hasher.Compare(hash, "other-salt", "supersecret"))
}

func TestGenerateSalt_Unique(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	a, err := hasher.GenerateSalt()
	require.NoError(t, err)
	b, err := hasher.GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHash_LongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	// Raw bcrypt rejects inputs over 72 bytes; the digest step must not.
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	hash, err := hasher.Hash(salt, string(long))
	require.NoError(t, err)
	require.NoError(t, hasher.Compare(hash, salt, string(long)))
}
