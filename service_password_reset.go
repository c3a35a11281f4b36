package feedgate

import (
	"context"
	"errors"
)

// RequestPasswordReset issues a reset token for the account behind
// email. Issuing evicts any previous token for the same user.
//
// An unknown email returns ("", nil): the outcome is indistinguishable
// from success at the API so that the endpoint cannot be used to
// enumerate accounts. The distinguishable outcome goes only to the audit
// sink and logger.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if s == nil {
		return "", ErrServiceNotReady
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.metricInc(MetricResetUnknownEmail)
			s.logger.Debug().Str("email", email).Msg("password reset requested for unknown email")
			s.emitAudit(ctx, auditEventResetUnknownEmail, false, "", ErrUserNotFound, func() map[string]string {
				return map[string]string{
					"email": email,
				}
			})
			return "", nil
		}
		return "", err
	}

	rt, err := s.store.CreatePasswordResetToken(ctx, user.ID)
	if err != nil {
		return "", err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(ctx, email, rt.Token); err != nil {
			s.logger.Error().Err(err).Msg("password reset mail delivery failed")
			return "", err
		}
	}

	s.metricInc(MetricResetRequest)
	s.emitAudit(ctx, auditEventResetRequest, true, user.ID, nil, func() map[string]string {
		return map[string]string{
			"email": email,
		}
	})

	return rt.Token, nil
}

// ResetPassword consumes a reset token and stores the new credential.
// Unknown tokens fail with [ErrResetTokenNotFound]. The token is removed
// from the store in the same critical section that looks it up, so a
// token presented twice concurrently succeeds at most once. Expiry is
// lazy: a token past its window fails with [ErrResetTokenExpired] on
// that first touch, already consumed.
func (s *Service) ResetPassword(ctx context.Context, tok, newPassword string) error {
	if s == nil || s.hasher == nil {
		return ErrServiceNotReady
	}

	rt, err := s.store.ConsumePasswordResetToken(ctx, tok)
	if err != nil {
		s.metricInc(MetricResetFailure)
		s.emitAudit(ctx, auditEventResetConfirm, false, "", err, nil)
		return err
	}

	if s.now().After(rt.ExpiresAt) {
		s.metricInc(MetricResetExpired)
		s.emitAudit(ctx, auditEventResetConfirm, false, rt.UserID, ErrResetTokenExpired, nil)
		return ErrResetTokenExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	updateErr := s.store.UpdateUserPassword(ctx, rt.UserID, hash)
	if updateErr != nil {
		s.metricInc(MetricResetFailure)
		s.emitAudit(ctx, auditEventResetConfirm, false, rt.UserID, updateErr, nil)
		return updateErr
	}

	s.metricInc(MetricResetSuccess)
	s.emitAudit(ctx, auditEventResetConfirm, true, rt.UserID, nil, nil)

	return nil
}
