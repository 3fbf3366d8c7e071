//go:build unit

package password_test

import (
	"testing"

	"nagoyameshi/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestBcryptHasher(t *testing.T) {
	h := password.NewBcryptHasherWithCost(4)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "password123"))
	assert.Error(t, h.Compare(hash, "password124"))
}
