package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentvault/backend/internal/pkg/apperrors"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("hash differs from plaintext", func(t *testing.T) {
		t.Parallel()
		hash, err := HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret123", hash)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		t.Parallel()
		first, err := HashPassword("secret123")
		require.NoError(t, err)
		second, err := HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects password shorter than six chars", func(t *testing.T) {
		t.Parallel()
		_, err := HashPassword("five5"[:5])
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrPasswordTooShort))
	})

	t.Run("accepts exactly six chars", func(t *testing.T) {
		t.Parallel()
		hash, err := HashPassword("sixsix")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run("matching password verifies", func(t *testing.T) {
		t.Parallel()
		assert.True(t, CheckPassword(hash, "correct-horse"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, CheckPassword(hash, "battery-staple"))
	})

	t.Run("garbage hash fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, CheckPassword("not-a-bcrypt-hash", "correct-horse"))
	})
}
