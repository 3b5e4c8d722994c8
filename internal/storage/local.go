package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on a single flat directory of the local
// filesystem. Files are served back under the /uploads/ URL prefix.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the uploads directory if needed and returns a
// ready-to-use LocalStorage.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Dir returns the directory backing the store, for static file serving.
func (s *LocalStorage) Dir() string {
	return s.basePath
}

// validateName rejects names that are empty or could traverse outside the
// uploads directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return ErrInvalidName
	}
	return nil
}

func (s *LocalStorage) path(name string) string {
	return filepath.Join(s.basePath, name)
}

// Save writes the stream to a temp file in the uploads directory and renames
// it into place, so a reader racing the write never sees a partial file.
func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("write blob %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close blob %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("finalize blob %q: %w", name, err)
	}
	return nil
}

// Delete removes the file backing name.
func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// PublicURL returns the static-serving path for name, e.g. "/uploads/cat.png".
func (s *LocalStorage) PublicURL(name string) string {
	return "/uploads/" + name
}
