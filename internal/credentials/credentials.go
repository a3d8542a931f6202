// Package credentials owns password hashing and verification. Passwords
// are stored as bcrypt hashes only; plaintext never leaves this package.
package credentials

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kwolosonovich/warbler/internal/models"
	"github.com/kwolosonovich/warbler/internal/repositories"
)

// dummyHash is a valid bcrypt hash compared against when the username is
// unknown, so a failed lookup costs the same as a failed password check.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash derives the stored credential from a plaintext password
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hashed), nil
}

// Check reports whether plaintext matches the stored credential
func Check(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Store verifies login credentials against the user directory
type Store struct {
	users repositories.UserRepository
}

// NewStore creates a credential Store backed by the given user directory
func NewStore(users repositories.UserRepository) *Store {
	return &Store{users: users}
}

// Verify looks up the user by exact username and checks the password.
// It returns (nil, nil) when either the username is unknown or the
// password does not match; the two cases are indistinguishable to the
// caller and take comparable time.
func (s *Store) Verify(username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, nil
		}
		return nil, err
	}
	if !Check(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}
