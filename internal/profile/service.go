package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/creatorhub/service/internal/storage"
)

// MediaCounter reports the number of registered media items. The count shown
// on a profile is the size of the whole registry, not scoped to its owner —
// the listing is shared across users.
type MediaCounter interface {
	Len() int
}

// View is a profile as served to clients, with the computed media count.
type View struct {
	Profile
	MediaCount int `json:"mediaCount"`
}

// Service contains business logic for profile management.
type Service struct {
	store *Store
	blobs storage.Storage
	media MediaCounter
}

// NewService creates a new profile Service.
func NewService(store *Store, blobs storage.Storage, media MediaCounter) *Service {
	return &Service{store: store, blobs: blobs, media: media}
}

func (s *Service) view(p Profile) View {
	return View{Profile: p, MediaCount: s.media.Len()}
}

// Get returns the profile view for username, creating defaults on first access.
func (s *Service) Get(username string) View {
	return s.view(s.store.Get(username))
}

// Update applies a partial profile update; empty fields are ignored.
func (s *Service) Update(username, displayName, bio string) View {
	return s.view(s.store.Update(username, displayName, bio))
}

// SetAvatar persists the avatar bytes under a deterministic per-user name,
// so a repeated upload overwrites the previous avatar at a stable path.
func (s *Service) SetAvatar(ctx context.Context, username, ext, contentType string, r io.Reader, size int64) (View, error) {
	name := "avatar-" + username + ext
	if err := s.blobs.Save(ctx, name, r, size, contentType); err != nil {
		return View{}, fmt.Errorf("store avatar: %w", err)
	}
	return s.view(s.store.SetAvatar(username, s.blobs.PublicURL(name))), nil
}

// SetCoverPhoto persists the cover photo bytes under a deterministic
// per-user name, mirroring SetAvatar.
func (s *Service) SetCoverPhoto(ctx context.Context, username, ext, contentType string, r io.Reader, size int64) (View, error) {
	name := "cover-" + username + ext
	if err := s.blobs.Save(ctx, name, r, size, contentType); err != nil {
		return View{}, fmt.Errorf("store cover photo: %w", err)
	}
	return s.view(s.store.SetCoverPhoto(username, s.blobs.PublicURL(name))), nil
}
