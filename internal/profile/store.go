// Package profile manages per-user profile data.
package profile

import "sync"

// Profile holds the mutable attributes of one user's profile. Avatar and
// CoverPhoto are nil until the user uploads them.
type Profile struct {
	DisplayName string  `json:"displayName"`
	Avatar      *string `json:"avatar"`
	CoverPhoto  *string `json:"coverPhoto"`
	Bio         string  `json:"bio"`
}

// Store maps usernames to profiles. A profile is created with defaults the
// first time a username is seen; profiles are never deleted. Memory-resident
// only, guarded for concurrent handler goroutines.
type Store struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{profiles: make(map[string]*Profile)}
}

// getOrCreate returns the live profile for username, creating it with
// defaults (displayName = username, empty bio) if absent. Callers must hold mu.
func (s *Store) getOrCreate(username string) *Profile {
	p, ok := s.profiles[username]
	if !ok {
		p = &Profile{DisplayName: username}
		s.profiles[username] = p
	}
	return p
}

// Get returns a copy of the profile for username, lazily creating it.
func (s *Store) Get(username string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getOrCreate(username)
}

// Update overwrites displayName and bio when the supplied values are
// non-empty. An empty field never clears an existing value.
func (s *Store) Update(username, displayName, bio string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(username)
	if displayName != "" {
		p.DisplayName = displayName
	}
	if bio != "" {
		p.Bio = bio
	}
	return *p
}

// SetAvatar records the public path of the user's avatar.
func (s *Store) SetAvatar(username, path string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(username)
	p.Avatar = &path
	return *p
}

// SetCoverPhoto records the public path of the user's cover photo.
func (s *Store) SetCoverPhoto(username, path string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(username)
	p.CoverPhoto = &path
	return *p
}
