package feedgate

import (
	"context"
	"errors"

	"github.com/feedgate/feedgate/permission"
)

// Signup registers a new account with the default {read} permission set.
// An email already registered (case-sensitive exact match) fails with
// [ErrDuplicateEmail]. Uniqueness is decided by the store inside one
// critical section, so two concurrent signups for the same email cannot
// both succeed.
func (s *Service) Signup(ctx context.Context, name, email, pass string) (*User, error) {
	if s == nil || s.hasher == nil {
		return nil, ErrServiceNotReady
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, name, email, hash, permission.Default())
	if errors.Is(err, ErrDuplicateEmail) {
		s.metricInc(MetricSignupDuplicate)
		s.emitAudit(ctx, auditEventSignupDuplicate, false, "", ErrDuplicateEmail, func() map[string]string {
			return map[string]string{
				"email": email,
			}
		})
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}

	s.metricInc(MetricSignupSuccess)
	s.emitAudit(ctx, auditEventSignupSuccess, true, user.ID, nil, func() map[string]string {
		return map[string]string{
			"email": email,
		}
	})

	return user, nil
}
