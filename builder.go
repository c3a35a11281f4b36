package feedgate

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/feedgate/feedgate/internal/audit"
	"github.com/feedgate/feedgate/password"
	"github.com/feedgate/feedgate/store"
	"github.com/feedgate/feedgate/token"
)

// Builder assembles a [Service]. Zero or more With* calls followed by
// one Build; a builder cannot be reused.
type Builder struct {
	config Config

	redis        *redis.Client
	sessionStore store.SessionStore
	tokenSource  token.Source
	mailer       ResetMailer
	auditSink    AuditSink
	logger       *zerolog.Logger
	now          func() time.Time

	built bool
}

// New returns a builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis keeps sessions in redis instead of the in-process backend.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithSessionStore installs a custom session backend. Takes precedence
// over WithRedis.
func (b *Builder) WithSessionStore(s store.SessionStore) *Builder {
	b.sessionStore = s
	return b
}

// WithTokenSource replaces the default opaque token source, e.g. with
// [token.JWT] for signed tokens.
func (b *Builder) WithTokenSource(src token.Source) *Builder {
	b.tokenSource = src
	return b
}

// WithMailer delivers issued password-reset tokens through m.
func (b *Builder) WithMailer(m ResetMailer) *Builder {
	b.mailer = m
	return b
}

// WithAuditSink receives audit events when auditing is enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithLogger sets the service logger. Defaults to a no-op logger.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

// WithMetricsEnabled toggles the in-process counter set.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithClock replaces the wall clock for the service and its directory.
// Intended for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build validates the configuration and assembles the service.
func (b *Builder) Build() (*Service, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	hasher, err := password.NewArgon2(password.Config{
		Memory:      b.config.Password.Memory,
		Time:        b.config.Password.Time,
		Parallelism: b.config.Password.Parallelism,
		SaltLength:  b.config.Password.SaltLength,
		KeyLength:   b.config.Password.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	sessions := b.sessionStore
	if sessions == nil && b.redis != nil {
		sessions = store.NewRedisSessions(b.redis, b.config.Session.RedisPrefix, b.config.Session.RefreshTTL)
	}

	opts := []store.Option{
		store.WithAccessTTL(b.config.Session.AccessTTL),
		store.WithResetTTL(b.config.Reset.TTL),
	}
	if sessions != nil {
		opts = append(opts, store.WithSessionStore(sessions))
	}
	if b.tokenSource != nil {
		opts = append(opts, store.WithTokenSource(b.tokenSource))
	}
	if b.now != nil {
		opts = append(opts, store.WithClock(b.now))
	}

	logger := zerolog.Nop()
	if b.logger != nil {
		logger = *b.logger
	}

	sink := b.auditSink
	if sink == nil {
		sink = audit.NewZerologSink(logger)
	}

	now := b.now
	if now == nil {
		now = time.Now
	}

	return &Service{
		config: b.config,
		store:  store.NewDirectory(opts...),
		hasher: hasher,
		audit: audit.NewDispatcher(audit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, sink),
		metrics: NewMetrics(b.config.Metrics),
		mailer:  b.mailer,
		logger:  logger,
		now:     now,
	}, nil
}
