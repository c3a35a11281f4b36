package feedgate

import (
	"context"

	"github.com/feedgate/feedgate/permission"
)

// HasPermission reports whether the user currently holds perm. A missing
// user yields false.
func (s *Service) HasPermission(ctx context.Context, userID string, perm permission.Permission) bool {
	if s == nil {
		return false
	}
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return false
	}
	return user.Permissions.Has(perm)
}

// UpdatePermissions replaces the user's permission set with the given
// values. Values outside the closed read/write/delete enumeration fail
// with [ErrPermissionInvalid] and nothing is stored.
func (s *Service) UpdatePermissions(ctx context.Context, userID string, values []string) (*User, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}

	perms, err := permission.Parse(values)
	if err != nil {
		s.metricInc(MetricPermissionUpdateRejected)
		s.emitAudit(ctx, auditEventPermissionsUpdate, false, userID, err, func() map[string]string {
			return map[string]string{
				"reason": "unknown_permission",
			}
		})
		return nil, err
	}

	user, err := s.store.UpdateUserPermissions(ctx, userID, perms)
	if err != nil {
		s.metricInc(MetricPermissionUpdateRejected)
		s.emitAudit(ctx, auditEventPermissionsUpdate, false, userID, err, nil)
		return nil, err
	}

	s.metricInc(MetricPermissionUpdate)
	s.emitAudit(ctx, auditEventPermissionsUpdate, true, userID, nil, func() map[string]string {
		return map[string]string{
			"permissions": perms.String(),
		}
	})

	return user, nil
}

// GetAllUsers returns a copy of the user collection (admin surface).
func (s *Service) GetAllUsers(ctx context.Context) ([]User, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}
	return s.store.Users(ctx), nil
}
