//go:build unit

package password_test

import (
	"testing"

	"stablebook/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		require.NotEqual(t, "password123", hash)

		require.NoError(t, password.ComparePassword(hash, "password123"))
	})

	t.Run("mismatch", func(t *testing.T) {
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)

		err = password.ComparePassword(hash, "wrong-password")
		require.ErrorIs(t, err, password.ErrComparisonFailed)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := password.HashPassword("")
		require.ErrorIs(t, err, password.ErrInvalidPassword)

		err = password.ComparePassword("", "password123")
		require.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}
