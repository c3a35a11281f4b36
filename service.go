package feedgate

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/feedgate/feedgate/internal/audit"
	"github.com/feedgate/feedgate/password"
	"github.com/feedgate/feedgate/store"
)

// ResetMailer delivers password-reset tokens out of band. Implemented by
// [mailer.Mailer]; nil disables delivery.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// Service is the call surface consumed by the UI layer. Instances are
// built through [Builder] and treated as immutable afterwards.
type Service struct {
	config  Config
	store   *store.Directory
	hasher  *password.Argon2
	audit   *audit.Dispatcher
	metrics *Metrics
	mailer  ResetMailer
	logger  zerolog.Logger
	now     func() time.Time
}

// Store exposes the directory for boundary collaborators (seed scripts,
// inspection). All business rules stay in the Service methods.
func (s *Service) Store() *store.Directory {
	if s == nil {
		return nil
	}
	return s.store
}

// Close drains the audit dispatcher. The service is unusable afterwards
// only for auditing; all other operations keep working.
func (s *Service) Close() {
	if s == nil {
		return
	}
	if s.audit != nil {
		s.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// dispatch buffer was full.
func (s *Service) AuditDropped() uint64 {
	if s == nil || s.audit == nil {
		return 0
	}
	return s.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (s *Service) MetricsSnapshot() MetricsSnapshot {
	if s == nil || s.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return s.metrics.Snapshot()
}

func (s *Service) metricInc(id MetricID) {
	if s == nil || s.metrics == nil {
		return
	}
	s.metrics.Inc(id)
}
