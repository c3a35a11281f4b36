package feedgate

import (
	"errors"
	"time"
)

// Config carries every tunable of the service. Instances are configured
// during initialization and treated as immutable afterwards.
type Config struct {
	Session  SessionConfig
	Reset    ResetConfig
	Password PasswordConfig
	Comment  CommentConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// SessionConfig controls session issuance.
type SessionConfig struct {
	// AccessTTL is the access-token expiry recorded on each session.
	AccessTTL time.Duration
	// RefreshTTL bounds how long the redis backend retains session keys.
	// The in-process backend ignores it.
	RefreshTTL time.Duration
	// RedisPrefix namespaces session keys in the redis backend.
	RedisPrefix string
}

// ResetConfig controls password-reset token issuance.
type ResetConfig struct {
	// TTL is the expiry window of a reset token.
	TTL time.Duration
}

// PasswordConfig carries the argon2id cost parameters.
type PasswordConfig struct {
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// CommentConfig bounds comment content length, counted in runes.
type CommentConfig struct {
	MinLength int
	MaxLength int
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process counter set.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration the demo ships with: 15 minute
// access tokens, 1 hour reset tokens, 1–500 character comments.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			AccessTTL:   15 * time.Minute,
			RefreshTTL:  7 * 24 * time.Hour,
			RedisPrefix: "fg",
		},
		Reset: ResetConfig{
			TTL: time.Hour,
		},
		Password: PasswordConfig{
			Memory:      64 * 1024,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Comment: CommentConfig{
			MinLength: 1,
			MaxLength: 500,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func validateConfig(cfg Config) error {
	if cfg.Session.AccessTTL <= 0 {
		return errors.New("session access TTL must be positive")
	}
	if cfg.Session.RefreshTTL < 0 {
		return errors.New("session refresh TTL must not be negative")
	}
	if cfg.Reset.TTL <= 0 {
		return errors.New("reset token TTL must be positive")
	}
	if cfg.Comment.MinLength < 1 {
		return errors.New("comment min length must be at least 1")
	}
	if cfg.Comment.MaxLength < cfg.Comment.MinLength {
		return errors.New("comment max length below min length")
	}
	return nil
}
