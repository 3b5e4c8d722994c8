// Package account manages user accounts and credential verification.
package account

import (
	"errors"
	"sync"
)

// ErrAlreadyExists is returned when a username is already registered.
var ErrAlreadyExists = errors.New("username already exists")

// ErrInvalidCredentials is returned when a username/password pair does not
// match a registered account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Directory maps usernames to password hashes. Accounts are never mutated or
// deleted once registered. Memory-resident only, guarded for concurrent
// handler goroutines.
type Directory struct {
	mu     sync.Mutex
	hashes map[string]string
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{hashes: make(map[string]string)}
}

// Add registers username with the given password hash. Returns
// ErrAlreadyExists when the username is taken.
func (d *Directory) Add(username, hash string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.hashes[username]; ok {
		return ErrAlreadyExists
	}
	d.hashes[username] = hash
	return nil
}

// Hash returns the stored password hash for username.
func (d *Directory) Hash(username string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.hashes[username]
	return h, ok
}

// Len returns the number of registered accounts.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.hashes)
}
