package feedgate

import "context"

// Login verifies the credential pair and issues a fresh session. Unknown
// email and wrong password both fail with [ErrInvalidCredentials]; the
// caller cannot tell which half was wrong.
func (s *Service) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	if s == nil || s.hasher == nil {
		return nil, ErrServiceNotReady
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, false, "", ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"email":  email,
				"reason": "user_not_found",
			}
		})
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(pass, user.PasswordHash)
	if err != nil || !ok {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, false, user.ID, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"email":  email,
				"reason": "password_mismatch",
			}
		})
		return nil, ErrInvalidCredentials
	}

	sess, err := s.store.CreateSession(ctx, user.ID)
	if err != nil {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, false, user.ID, err, func() map[string]string {
			return map[string]string{
				"email":  email,
				"reason": "session_save_failed",
			}
		})
		return nil, err
	}

	s.metricInc(MetricSessionCreated)
	s.metricInc(MetricLoginSuccess)
	s.emitAudit(ctx, auditEventLoginSuccess, true, user.ID, nil, func() map[string]string {
		return map[string]string{
			"email": email,
		}
	})

	return &LoginResult{
		User: *user,
		Tokens: AuthTokens{
			AccessToken:  sess.AccessToken,
			RefreshToken: sess.RefreshToken,
		},
	}, nil
}

// Logout removes the session bound to accessToken and reports whether a
// session was actually removed. Unknown tokens are an idempotent no-op.
func (s *Service) Logout(ctx context.Context, accessToken string) (bool, error) {
	if s == nil {
		return false, ErrServiceNotReady
	}

	// Resolve the owner before removal so the audit event stays
	// attributable. A miss here leaves the id empty, matching the
	// idempotent no-op outcome.
	var userID string
	if sess, err := s.store.FindSessionByToken(ctx, accessToken); err == nil {
		userID = sess.UserID
	}

	removed, err := s.store.RemoveSession(ctx, accessToken)
	if err != nil {
		return false, err
	}
	if removed {
		s.metricInc(MetricLogout)
		s.metricInc(MetricSessionInvalidated)
	}
	s.emitAudit(ctx, auditEventLogout, removed, userID, nil, nil)

	return removed, nil
}

// RefreshToken rotates the session holding refreshToken and returns the
// new token pair. Refresh tokens are single use: a second call with the
// same token fails with [ErrSessionNotFound] and the caller must force a
// re-login.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}

	sess, err := s.store.RefreshSession(ctx, refreshToken)
	if err != nil {
		s.metricInc(MetricRefreshFailure)
		s.emitAudit(ctx, auditEventRefreshInvalid, false, "", err, nil)
		return nil, err
	}

	s.metricInc(MetricRefreshSuccess)
	s.metricInc(MetricSessionCreated)
	s.emitAudit(ctx, auditEventRefreshSuccess, true, sess.UserID, nil, nil)

	return &AuthTokens{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}, nil
}
