// Package sessions maps opaque tokens to logged-in user ids. The token is
// the only thing the client holds; everything else lives server-side.
package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// CookieName is the session cookie the HTTP layer reads and writes.
const CookieName = "warbler_session"

// Store binds opaque session tokens to user ids
type Store interface {
	// Create binds a fresh token to the user id and returns it
	Create(ctx context.Context, userID uint) (string, error)
	// Get resolves a token to a user id; 0 means no such session
	Get(ctx context.Context, token string) (uint, error)
	// Delete invalidates a token; unknown tokens are a no-op
	Delete(ctx context.Context, token string) error
}

// newToken returns 32 random bytes, hex-encoded
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
