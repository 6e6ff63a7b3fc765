// Package session holds the server-side authentication state. Clients carry
// only an opaque token in the session cookie; everything else lives here.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session"

const tokenBytes = 32

type Session struct {
	UserID        uint
	Username      string
	Authenticated bool
}

// Store maps opaque tokens to sessions. Implementations must be safe for
// concurrent use across requests.
type Store interface {
	Get(token string) (Session, bool)
	Put(token string, s Session)
	Delete(token string)
	// DeleteByUserID removes every session referencing the given account.
	// Called when the account is deleted.
	DeleteByUserID(userID uint)
}

// GenerateToken returns a new random session token.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// MemoryStore keeps sessions for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *MemoryStore) Put(token string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = s
}

func (m *MemoryStore) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

func (m *MemoryStore) DeleteByUserID(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, token)
		}
	}
}
