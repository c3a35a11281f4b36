package feedgate

import "context"

// Authenticate resolves an access token to its user. The token must
// match the session's access token exactly; a session's refresh token
// does not authenticate requests. The recorded session expiry is not
// consulted here: sessions end by logout or by refresh rotation.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*User, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}

	sess, err := s.store.FindSessionByToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if sess.AccessToken != accessToken {
		return nil, ErrSessionNotFound
	}

	return s.store.FindUserByID(ctx, sess.UserID)
}

// SessionForToken returns the session record behind either of its
// tokens, mainly for diagnostics and tests.
func (s *Service) SessionForToken(ctx context.Context, tok string) (*Session, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}
	return s.store.FindSessionByToken(ctx, tok)
}
