// Package sessions keeps admin session tokens in an in-memory TTL cache.
// Restarting the server logs everyone out, which is acceptable for a
// single-operator back office.
package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const tokenBytes = 32

// CookieName is the session cookie carried by admin requests.
const CookieName = "admin_session"

// Manager issues and validates opaque session tokens.
type Manager struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewManager creates a manager whose tokens expire after ttl.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		store: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Create issues a new session token.
func (m *Manager) Create() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("sessions: failed to generate token: %w", err)
	}
	token := hex.EncodeToString(buf)
	m.store.Set(token, time.Now(), m.ttl)
	return token, nil
}

// Valid reports whether the token belongs to a live session.
func (m *Manager) Valid(token string) bool {
	if token == "" {
		return false
	}
	_, found := m.store.Get(token)
	return found
}

// Destroy invalidates the token. Unknown tokens are ignored.
func (m *Manager) Destroy(token string) {
	m.store.Delete(token)
}

// TTL returns the session lifetime, used for the cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
