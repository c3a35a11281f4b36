package feedgate

import internalmetrics "github.com/feedgate/feedgate/internal/metrics"

// MetricID identifies a specific counter in the in-process metrics
// system.
type MetricID = internalmetrics.MetricID

const (
	MetricSignupSuccess            = internalmetrics.MetricSignupSuccess
	MetricSignupDuplicate          = internalmetrics.MetricSignupDuplicate
	MetricLoginSuccess             = internalmetrics.MetricLoginSuccess
	MetricLoginFailure             = internalmetrics.MetricLoginFailure
	MetricLogout                   = internalmetrics.MetricLogout
	MetricRefreshSuccess           = internalmetrics.MetricRefreshSuccess
	MetricRefreshFailure           = internalmetrics.MetricRefreshFailure
	MetricSessionCreated           = internalmetrics.MetricSessionCreated
	MetricSessionInvalidated       = internalmetrics.MetricSessionInvalidated
	MetricResetRequest             = internalmetrics.MetricResetRequest
	MetricResetUnknownEmail        = internalmetrics.MetricResetUnknownEmail
	MetricResetSuccess             = internalmetrics.MetricResetSuccess
	MetricResetFailure             = internalmetrics.MetricResetFailure
	MetricResetExpired             = internalmetrics.MetricResetExpired
	MetricCommentAdded             = internalmetrics.MetricCommentAdded
	MetricCommentRejected          = internalmetrics.MetricCommentRejected
	MetricCommentDeleted           = internalmetrics.MetricCommentDeleted
	MetricCommentDeleteDenied      = internalmetrics.MetricCommentDeleteDenied
	MetricPermissionUpdate         = internalmetrics.MetricPermissionUpdate
	MetricPermissionUpdateRejected = internalmetrics.MetricPermissionUpdateRejected
)

// Metrics holds the service's atomic counters.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a [Metrics] instance. When cfg.Enabled is false,
// all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{Enabled: cfg.Enabled})
}
