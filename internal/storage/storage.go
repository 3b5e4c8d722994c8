// Package storage defines the interface for blob storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the local filesystem backend is the default; the MinIO implementation
// works with any S3-compatible provider (MinIO, ArvanCloud, AWS S3).
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the named blob does not exist.
var ErrNotFound = errors.New("blob not found")

// ErrInvalidName is returned when a blob name could escape the store.
var ErrInvalidName = errors.New("invalid blob name")

// Storage is the interface for persisting and removing uploaded blobs.
type Storage interface {
	// Save streams data to the store under the given name, overwriting any
	// existing blob with that name.
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Delete removes the blob identified by name. Returns ErrNotFound when
	// the blob is already absent.
	Delete(ctx context.Context, name string) error
	// PublicURL constructs the browser-accessible URL for a given name.
	PublicURL(name string) string
}
