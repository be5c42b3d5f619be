//go:build unit

package password_test

import (
	"testing"

	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	t.Run("success: matching password", func(t *testing.T) {
		assert.NoError(t, password.ComparePassword(hashed, "password123"))
	})

	t.Run("error: wrong password", func(t *testing.T) {
		err := password.ComparePassword(hashed, "password124")
		assert.True(t, errs.Is(err, password.ErrMismatch))
	})

	t.Run("error: corrupt hash is not a mismatch", func(t *testing.T) {
		err := password.ComparePassword("not-a-bcrypt-hash", "password123")
		require.Error(t, err)
		assert.False(t, errs.Is(err, password.ErrMismatch))
	})

	t.Run("error: empty input", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.True(t, errs.Is(err, password.ErrEmptyPassword))
		assert.True(t, errs.Is(password.ComparePassword(hashed, ""), password.ErrEmptyPassword))
	})
}
