package account

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Service contains the business logic for registration and login. Passwords
// are stored as bcrypt hashes; the plaintext never leaves this package.
type Service struct {
	dir *Directory
}

// NewService creates a new account Service.
func NewService(dir *Directory) *Service {
	return &Service{dir: dir}
}

// Register creates a new account. Returns ErrAlreadyExists when the username
// is taken.
func (s *Service) Register(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.dir.Add(username, string(hash))
}

// Authenticate verifies a username/password pair. Returns
// ErrInvalidCredentials when the account is unknown or the password does not
// match.
func (s *Service) Authenticate(username, password string) error {
	hash, ok := s.dir.Hash(username)
	if !ok {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
