package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestHashPassword tests that hashing salts per call and uses the fixed cost
func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("Secret1!")
	require.NoError(t, err)
	hash2, err := HashPassword("Secret1!")
	require.NoError(t, err)

	// Fresh salt per call: identical passwords never share a stored hash
	assert.NotEqual(t, hash1, hash2)
	assert.NotContains(t, hash1, "Secret1!")

	cost, err := bcrypt.Cost([]byte(hash1))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)
}

// TestCheckPassword tests match and mismatch against a stored hash
func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Secret1!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("", "Secret1!"))
}

// TestBurnPasswordCheck tests that the decoy comparison runs against a valid
// bcrypt digest (a malformed digest would short-circuit and defeat the point)
func TestBurnPasswordCheck(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyHash))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)

	BurnPasswordCheck("anything")
}
