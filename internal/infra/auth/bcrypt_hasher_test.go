package auth

import (
	"strings"
	"testing"

	"hrcore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"), "bcrypt output must carry its format tag")
	assert.True(t, hasher.Check("Secret123", hash))
	assert.False(t, hasher.Check("Secret124", hash))
}

func TestBcryptHasher_SameSecretDifferentHashes(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salting must make repeated hashes differ")
}

func TestBcryptHasher_CheckRejectsPlaintextStoredValue(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// A stored value that never went through Hash is not a valid bcrypt
	// encoding, so the comparison fails rather than erroring out.
	assert.False(t, hasher.Check("Admin", "Admin"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 1000},
	})

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Secret123", hash))
}
