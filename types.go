package feedgate

import (
	"github.com/feedgate/feedgate/internal/audit"
	"github.com/feedgate/feedgate/store"
)

// User is an account record owned by the directory store.
type User = store.User

// Session is a live access/refresh token pair bound to one user.
type Session = store.Session

// PasswordResetToken is a single-use, time-boxed recovery token.
type PasswordResetToken = store.PasswordResetToken

// Comment is one entry in the shared feed.
type Comment = store.Comment

// AuthTokens is the token pair handed to a client on login or refresh.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is returned by [Service.Login].
type LoginResult struct {
	User   User
	Tokens AuthTokens
}

// AuditEvent is a structured audit record emitted by the service.
type AuditEvent = audit.Event

// AuditSink receives [AuditEvent] values from the service's audit
// dispatcher.
type AuditSink = audit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = audit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = audit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = audit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}
