package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/service/internal/storage"
)

func TestLocalStorage_SaveDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("not actually a png")

	t.Run("save writes the file", func(t *testing.T) {
		err := store.Save(ctx, "cat.png", bytes.NewReader(content), int64(len(content)), "image/png")
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, "cat.png"))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("no temp files remain after save", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), ".upload-"), "leftover temp file %s", e.Name())
		}
	})

	t.Run("save overwrites an existing name", func(t *testing.T) {
		replacement := []byte("second version")
		err := store.Save(ctx, "cat.png", bytes.NewReader(replacement), int64(len(replacement)), "image/png")
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, "cat.png"))
		require.NoError(t, err)
		assert.Equal(t, replacement, got)
	})

	t.Run("public url uses the uploads prefix", func(t *testing.T) {
		assert.Equal(t, "/uploads/cat.png", store.PublicURL("cat.png"))
	})

	t.Run("delete removes the file", func(t *testing.T) {
		err := store.Delete(ctx, "cat.png")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "cat.png"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete of a missing file reports not found", func(t *testing.T) {
		err := store.Delete(ctx, "cat.png")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLocalStorage_RejectsBadNames(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name     string
		blobName string
	}{
		{"empty", ""},
		{"dot", "."},
		{"dotdot", ".."},
		{"slash", "a/b.png"},
		{"backslash", `a\b.png`},
		{"traversal", "../escape.png"},
		{"null byte", "a\x00b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Save(ctx, tc.blobName, bytes.NewReader([]byte("x")), 1, "image/png")
			assert.ErrorIs(t, err, storage.ErrInvalidName)

			err = store.Delete(ctx, tc.blobName)
			assert.ErrorIs(t, err, storage.ErrInvalidName)
		})
	}
}

func TestNewLocalStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
