package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorhub/service/internal/storage"
)

// failingStorage simulates a filesystem failure on every operation.
type failingStorage struct{}

func (failingStorage) Save(context.Context, string, io.Reader, int64, string) error {
	return errors.New("disk full")
}

func (failingStorage) Delete(context.Context, string) error {
	return errors.New("disk full")
}

func (failingStorage) PublicURL(name string) string {
	return "/uploads/" + name
}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewService(NewRegistry(), store, zap.NewNop().Sugar()), dir
}

func TestService_Intake(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()
	content := []byte("0123456789")

	t.Run("accepted upload is stored and registered", func(t *testing.T) {
		rec, err := svc.Intake(ctx, "cat.png", "image/png", bytes.NewReader(content), int64(len(content)))
		require.NoError(t, err)

		assert.Equal(t, "cat.png", rec.Name)
		assert.Equal(t, "/uploads/cat.png", rec.Path)
		assert.Equal(t, "image/png", rec.Type)
		assert.False(t, rec.UploadedAt.IsZero())

		got, err := os.ReadFile(filepath.Join(dir, "cat.png"))
		require.NoError(t, err)
		assert.Equal(t, content, got)

		require.Len(t, svc.List(), 1)
	})

	t.Run("disallowed type persists nothing", func(t *testing.T) {
		_, err := svc.Intake(ctx, "run.exe", "application/x-msdownload", bytes.NewReader(content), int64(len(content)))
		assert.ErrorIs(t, err, ErrUnsupportedType)

		_, statErr := os.Stat(filepath.Join(dir, "run.exe"))
		assert.True(t, os.IsNotExist(statErr))
		assert.Len(t, svc.List(), 1)
	})

	t.Run("duplicate name replaces the existing record", func(t *testing.T) {
		_, err := svc.Intake(ctx, "cat.png", "image/webp", bytes.NewReader(content), int64(len(content)))
		require.NoError(t, err)

		list := svc.List()
		require.Len(t, list, 1)
		assert.Equal(t, "image/webp", list[0].Type)
	})
}

func TestService_IntakeStorageFailure(t *testing.T) {
	svc := NewService(NewRegistry(), failingStorage{}, zap.NewNop().Sugar())

	_, err := svc.Intake(context.Background(), "cat.png", "image/png", bytes.NewReader([]byte("x")), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)

	// atomicity: a failed store must not leave a registry record behind
	assert.Empty(t, svc.List())
}

func TestService_Delete(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	_, err := svc.Intake(ctx, "song.mp3", "audio/mpeg", bytes.NewReader([]byte("riff")), 4)
	require.NoError(t, err)

	t.Run("removes record and file", func(t *testing.T) {
		rec, err := svc.Delete(ctx, "song.mp3")
		require.NoError(t, err)
		assert.Equal(t, "song.mp3", rec.Name)

		assert.Empty(t, svc.List())
		_, statErr := os.Stat(filepath.Join(dir, "song.mp3"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("second delete of the same name is not found", func(t *testing.T) {
		_, err := svc.Delete(ctx, "song.mp3")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_DeleteIsBestEffortOnBlobFailure(t *testing.T) {
	registry := NewRegistry()
	svc := NewService(registry, failingStorage{}, zap.NewNop().Sugar())
	registry.Put(Record{Name: "ghost.png", Path: "/uploads/ghost.png", Type: "image/png"})

	// metadata removal is authoritative even when the unlink fails
	rec, err := svc.Delete(context.Background(), "ghost.png")
	require.NoError(t, err)
	assert.Equal(t, "ghost.png", rec.Name)
	assert.Equal(t, 0, registry.Len())
}
