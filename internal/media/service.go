package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/creatorhub/service/internal/storage"
	"go.uber.org/zap"
)

// ErrUnsupportedType is returned when an upload's MIME type is not in the
// allow-list. Nothing is persisted in that case.
var ErrUnsupportedType = errors.New("unsupported media type")

// allowedTypes is the fixed set of accepted image/audio/video MIME types.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"audio/mpeg": true,
	"audio/ogg":  true,
	"audio/wav":  true,
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
}

// Service is the upload intake pipeline: it validates a submission, persists
// the bytes through the blob store, and registers the resulting record.
type Service struct {
	registry *Registry
	store    storage.Storage
	log      *zap.SugaredLogger
}

// NewService creates a new media Service.
func NewService(registry *Registry, store storage.Storage, log *zap.SugaredLogger) *Service {
	return &Service{registry: registry, store: store, log: log}
}

// Registry exposes the backing registry for read-time media counts.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Intake validates and persists one uploaded file. The record is registered
// only after the blob is durably stored, so a storage failure leaves the
// registry unchanged.
func (s *Service) Intake(ctx context.Context, name, contentType string, r io.Reader, size int64) (Record, error) {
	if !allowedTypes[contentType] {
		return Record{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	if err := s.store.Save(ctx, name, r, size, contentType); err != nil {
		return Record{}, fmt.Errorf("store %q: %w", name, err)
	}

	rec := Record{
		Name:       name,
		Path:       s.store.PublicURL(name),
		Type:       contentType,
		UploadedAt: time.Now().UTC(),
	}
	s.registry.Put(rec)
	return rec, nil
}

// List returns every registered record in upload order.
func (s *Service) List() []Record {
	return s.registry.List()
}

// Delete removes the named record. Metadata removal is authoritative; the
// blob deletion is best-effort and a failure is only logged, which can leave
// an orphaned file on disk.
func (s *Service) Delete(ctx context.Context, name string) (Record, error) {
	rec, err := s.registry.RemoveByName(name)
	if err != nil {
		return Record{}, err
	}
	if err := s.store.Delete(ctx, name); err != nil {
		s.log.Warnw("failed to delete blob", "name", name, "error", err)
	}
	return rec, nil
}
