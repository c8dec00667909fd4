package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "secret123"))
	assert.ErrorIs(t, ComparePassword(hash, "secret124"), ErrPasswordMismatch)
	assert.Error(t, ComparePassword("not-a-hash", "secret123"))
}

func TestHashPasswordClampsCost(t *testing.T) {
	hash, err := HashPassword("secret123", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
