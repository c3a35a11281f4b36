package internaldefs

import (
	"github.com/feedgate/feedgate"
)

// CounterDef binds a service counter to its exported name and help text.
type CounterDef struct {
	ID   feedgate.MetricID
	Name string
	Help string
}

// CounterDefs lists every service counter in render order. Exporters
// iterate this slice so their output stays stable across releases.
var CounterDefs = []CounterDef{
	{ID: feedgate.MetricSignupSuccess, Name: "feedgate_signup_success_total", Help: "Accounts created."},
	{ID: feedgate.MetricSignupDuplicate, Name: "feedgate_signup_duplicate_total", Help: "Signups rejected for an already-registered email."},
	{ID: feedgate.MetricLoginSuccess, Name: "feedgate_login_success_total", Help: "Successful logins."},
	{ID: feedgate.MetricLoginFailure, Name: "feedgate_login_failure_total", Help: "Logins rejected for bad credentials."},
	{ID: feedgate.MetricLogout, Name: "feedgate_logout_total", Help: "Sessions ended by logout."},
	{ID: feedgate.MetricRefreshSuccess, Name: "feedgate_refresh_success_total", Help: "Token pairs rotated."},
	{ID: feedgate.MetricRefreshFailure, Name: "feedgate_refresh_failure_total", Help: "Refresh attempts with an unknown or consumed token."},
	{ID: feedgate.MetricSessionCreated, Name: "feedgate_session_created_total", Help: "Sessions created."},
	{ID: feedgate.MetricSessionInvalidated, Name: "feedgate_session_invalidated_total", Help: "Sessions removed."},
	{ID: feedgate.MetricResetRequest, Name: "feedgate_reset_request_total", Help: "Password reset tokens issued."},
	{ID: feedgate.MetricResetUnknownEmail, Name: "feedgate_reset_unknown_email_total", Help: "Reset requests for unknown emails (silently accepted)."},
	{ID: feedgate.MetricResetSuccess, Name: "feedgate_reset_success_total", Help: "Passwords reset by token."},
	{ID: feedgate.MetricResetFailure, Name: "feedgate_reset_failure_total", Help: "Reset confirmations with an unknown token."},
	{ID: feedgate.MetricResetExpired, Name: "feedgate_reset_expired_total", Help: "Reset confirmations with an expired token."},
	{ID: feedgate.MetricCommentAdded, Name: "feedgate_comment_added_total", Help: "Comments posted."},
	{ID: feedgate.MetricCommentRejected, Name: "feedgate_comment_rejected_total", Help: "Comments rejected for permission or content bounds."},
	{ID: feedgate.MetricCommentDeleted, Name: "feedgate_comment_deleted_total", Help: "Comments deleted."},
	{ID: feedgate.MetricCommentDeleteDenied, Name: "feedgate_comment_delete_denied_total", Help: "Comment deletions rejected for missing delete permission."},
	{ID: feedgate.MetricPermissionUpdate, Name: "feedgate_permission_update_total", Help: "Permission sets replaced."},
	{ID: feedgate.MetricPermissionUpdateRejected, Name: "feedgate_permission_update_rejected_total", Help: "Permission updates rejected."},
}

// AuditDroppedName is the exported name of the dispatcher backpressure
// counter, which lives outside the MetricID enumeration.
const AuditDroppedName = "feedgate_audit_dropped_total"

// AuditDroppedHelp describes [AuditDroppedName].
const AuditDroppedHelp = "Audit events discarded by dispatcher backpressure."
