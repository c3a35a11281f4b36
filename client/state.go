// Package client mirrors the session lifecycle on the consumer side: it
// holds the signed-in user and token pair, persists them through a
// Keychain, and restores them on startup.
package client

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/feedgate/feedgate"
)

// Keychain entry names. Stable across releases so restored snapshots
// survive upgrades.
const (
	keyUser   = "user"
	keyTokens = "tokens"
)

// State tracks one client's view of its session. All methods are safe
// for concurrent use.
type State struct {
	mu       sync.RWMutex
	svc      *feedgate.Service
	keychain Keychain
	logger   zerolog.Logger

	user   *feedgate.User
	tokens *feedgate.AuthTokens
}

// Option customizes a State.
type Option func(*State)

// WithKeychain swaps the persistence backend. Defaults to an in-memory
// keychain.
func WithKeychain(kc Keychain) Option {
	return func(s *State) { s.keychain = kc }
}

// WithLogger sets the logger used for restore/refresh diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *State) { s.logger = logger }
}

// NewState creates a signed-out State bound to svc.
func NewState(svc *feedgate.Service, opts ...Option) *State {
	s := &State{
		svc:      svc,
		keychain: NewMemoryKeychain(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentUser returns the signed-in user, or nil.
func (s *State) CurrentUser() *feedgate.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// AccessToken returns the current access token, or "" when signed out.
func (s *State) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return ""
	}
	return s.tokens.AccessToken
}

// Login authenticates and persists the resulting snapshot.
func (s *State) Login(ctx context.Context, email, password string) (*feedgate.User, error) {
	res, err := s.svc.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := res.User
	tokens := res.Tokens
	s.user = &user
	s.tokens = &tokens
	s.persistLocked()
	u := user
	return &u, nil
}

// Logout invalidates the server session, then clears local state. Local
// state is cleared even when the server no longer knows the session.
func (s *State) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens != nil {
		if _, err := s.svc.Logout(ctx, s.tokens.AccessToken); err != nil {
			s.clearLocked()
			return err
		}
	}
	s.clearLocked()
	return nil
}

// RefreshSession rotates the token pair. On a failed rotation the local
// session is cleared: the refresh token was consumed or never valid, so
// the client is effectively signed out.
func (s *State) RefreshSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens == nil {
		return feedgate.ErrSessionNotFound
	}

	fresh, err := s.svc.RefreshToken(ctx, s.tokens.RefreshToken)
	if err != nil {
		s.clearLocked()
		return err
	}

	s.tokens = fresh
	s.persistLocked()
	return nil
}

// Restore loads the persisted snapshot and validates it against the
// service. A snapshot whose access token no longer resolves is retried
// once through refresh; if that also fails the snapshot is discarded and
// the State stays signed out.
func (s *State) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userRaw, err := s.keychain.Get(keyUser)
	if err != nil {
		s.clearLocked()
		return nil
	}
	tokensRaw, err := s.keychain.Get(keyTokens)
	if err != nil {
		s.clearLocked()
		return nil
	}

	var user feedgate.User
	var tokens feedgate.AuthTokens
	if json.Unmarshal(userRaw, &user) != nil || json.Unmarshal(tokensRaw, &tokens) != nil {
		s.logger.Warn().Msg("discarding corrupt session snapshot")
		s.clearLocked()
		return nil
	}

	if fresh, err := s.svc.Authenticate(ctx, tokens.AccessToken); err == nil {
		s.user = fresh
		s.tokens = &tokens
		s.persistLocked()
		return nil
	}

	rotated, err := s.svc.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		s.logger.Debug().Msg("stored session no longer valid")
		s.clearLocked()
		return nil
	}
	fresh, err := s.svc.Authenticate(ctx, rotated.AccessToken)
	if err != nil {
		s.clearLocked()
		return nil
	}

	s.user = fresh
	s.tokens = rotated
	s.persistLocked()
	return nil
}

func (s *State) persistLocked() {
	if s.user == nil || s.tokens == nil {
		return
	}
	userRaw, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Error().Err(err).Msg("persist session snapshot")
		return
	}
	tokensRaw, err := json.Marshal(s.tokens)
	if err != nil {
		s.logger.Error().Err(err).Msg("persist session snapshot")
		return
	}
	if err := s.keychain.Set(keyUser, userRaw); err != nil {
		s.logger.Error().Err(err).Msg("persist session snapshot")
		return
	}
	if err := s.keychain.Set(keyTokens, tokensRaw); err != nil {
		s.logger.Error().Err(err).Msg("persist session snapshot")
	}
}

func (s *State) clearLocked() {
	s.user = nil
	s.tokens = nil
	_ = s.keychain.Delete(keyUser)
	_ = s.keychain.Delete(keyTokens)
}
