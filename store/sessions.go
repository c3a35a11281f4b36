package store

import (
	"context"
	"sync"
)

// SessionStore is the backend holding the session collection. The
// default implementation is an in-process slice; a redis-backed variant
// exists for shared state between processes.
//
// Implementations never inspect ExpiresAt: session retirement happens
// only through Remove and Rotate.
type SessionStore interface {
	// Save stores a freshly minted session.
	Save(ctx context.Context, s *Session) error
	// FindByToken matches either the access or the refresh token.
	FindByToken(ctx context.Context, token string) (*Session, error)
	// Remove deletes any session matching either token, reporting
	// whether a removal occurred.
	Remove(ctx context.Context, token string) (bool, error)
	// Rotate atomically deletes the session holding refreshToken (and
	// only a refresh token matches) and saves the session minted for the
	// same user. The old pair is invalid even if mint fails afterwards.
	Rotate(ctx context.Context, refreshToken string, mint func(userID string) (*Session, error)) (*Session, error)
}

// MemorySessions is the default in-process session backend.
type MemorySessions struct {
	mu       sync.Mutex
	sessions []Session
}

// NewMemorySessions returns an empty in-process session backend.
func NewMemorySessions() *MemorySessions {
	return &MemorySessions{}
}

// Save appends the session.
func (m *MemorySessions) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = append(m.sessions, *s)
	return nil
}

// FindByToken matches against both token fields.
func (m *MemorySessions) FindByToken(_ context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.sessions {
		if m.sessions[i].AccessToken == token || m.sessions[i].RefreshToken == token {
			out := m.sessions[i]
			return &out, nil
		}
	}
	return nil, ErrSessionNotFound
}

// Remove deletes any session matching either token field.
func (m *MemorySessions) Remove(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.sessions[:0]
	removed := false
	for _, s := range m.sessions {
		if s.AccessToken == token || s.RefreshToken == token {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	m.sessions = kept
	return removed, nil
}

// Rotate deletes the session holding refreshToken and saves a fresh one
// for the same user. The whole rotate happens under the backend lock, so
// two racing rotates of the same token cannot both succeed.
func (m *MemorySessions) Rotate(_ context.Context, refreshToken string, mint func(userID string) (*Session, error)) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.sessions {
		if m.sessions[i].RefreshToken == refreshToken {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrSessionNotFound
	}

	userID := m.sessions[idx].UserID
	m.sessions = append(m.sessions[:idx], m.sessions[idx+1:]...)

	next, err := mint(userID)
	if err != nil {
		return nil, err
	}
	m.sessions = append(m.sessions, *next)

	out := *next
	return &out, nil
}
