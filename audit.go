package feedgate

import (
	"context"
	"time"

	"github.com/feedgate/feedgate/internal/audit"
)

const (
	auditEventSignupSuccess     = "signup_success"
	auditEventSignupDuplicate   = "signup_duplicate"
	auditEventLoginSuccess      = "login_success"
	auditEventLoginFailure      = "login_failure"
	auditEventLogout            = "logout"
	auditEventRefreshSuccess    = "refresh_success"
	auditEventRefreshInvalid    = "refresh_invalid"
	auditEventResetRequest      = "password_reset_request"
	auditEventResetUnknownEmail = "password_reset_unknown_email"
	auditEventResetConfirm      = "password_reset_confirm"
	auditEventPermissionsUpdate = "permissions_update"
	auditEventCommentAdd        = "comment_add"
	auditEventCommentDelete     = "comment_delete"
)

// emitAudit forwards one event to the dispatcher. metadata is a thunk so
// that map construction costs nothing when auditing is disabled.
func (s *Service) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID string,
	opErr error,
	metadata func() map[string]string,
) {
	if s == nil || s.audit == nil {
		return
	}

	event := audit.Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	s.audit.Emit(ctx, event)
}
