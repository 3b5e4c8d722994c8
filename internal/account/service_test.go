package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Register(t *testing.T) {
	dir := NewDirectory()
	svc := NewService(dir)

	t.Run("first registration succeeds", func(t *testing.T) {
		require.NoError(t, svc.Register("ada", "hunter2"))
		assert.Equal(t, 1, dir.Len())
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		err := svc.Register("ada", "different-password")
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Equal(t, 1, dir.Len())
	})

	t.Run("password is not stored in plaintext", func(t *testing.T) {
		hash, ok := dir.Hash("ada")
		require.True(t, ok)
		assert.NotEqual(t, "hunter2", hash)
		assert.NotContains(t, hash, "hunter2")
	})
}

func TestService_Authenticate(t *testing.T) {
	svc := NewService(NewDirectory())
	require.NoError(t, svc.Register("ada", "hunter2"))

	t.Run("correct credentials", func(t *testing.T) {
		assert.NoError(t, svc.Authenticate("ada", "hunter2"))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := svc.Authenticate("ada", "hunter3")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		err := svc.Authenticate("grace", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
