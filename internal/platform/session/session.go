// Package session holds the current-user flag that gates the mutating
// views. It is deliberately not an authentication system: the view layer
// decides who may log in, this package only remembers the answer for the
// lifetime of the process.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// User is the signed-in profile.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Session is one login. The token identifies it; nothing validates it
// beyond equality with the active session.
type Session struct {
	Token    uuid.UUID `json:"token"`
	User     User      `json:"user"`
	IssuedAt time.Time `json:"issued_at"`
}

// Manager holds at most one active session.
type Manager struct {
	mu      sync.RWMutex
	now     func() time.Time
	current *Session
}

// NewManager returns a Manager. now may be nil, in which case the wall
// clock is used.
func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{now: now}
}

// Login starts a session for user, replacing any existing one.
func (m *Manager) Login(user User) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Session{
		Token:    uuid.New(),
		User:     user,
		IssuedAt: m.now(),
	}
	m.current = &s
	return s
}

// Logout clears the active session. Logging out twice is harmless.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// Current returns the signed-in user, if any.
func (m *Manager) Current() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return User{}, false
	}
	return m.current.User, true
}

// Active reports whether a session exists.
func (m *Manager) Active() bool {
	_, ok := m.Current()
	return ok
}
