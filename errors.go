package feedgate

import (
	"errors"

	"github.com/feedgate/feedgate/permission"
	"github.com/feedgate/feedgate/store"
)

var (
	// ErrDuplicateEmail rejects signup with an email that is already
	// registered (case-sensitive exact match). Re-exported from the
	// store, which enforces uniqueness under its lock.
	ErrDuplicateEmail = store.ErrDuplicateEmail
	// ErrInvalidCredentials rejects login on unknown email or wrong
	// password without revealing which half failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPermissionDenied rejects a permission-gated action attempted
	// without the required permission.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidContent rejects comment content outside the configured
	// length bounds.
	ErrInvalidContent = errors.New("invalid comment content")
	// ErrResetTokenExpired rejects a password-reset token consumed after
	// its expiry window. The token is discarded on this check.
	ErrResetTokenExpired = errors.New("password reset token expired")
	// ErrServiceNotReady is returned when the service was not built
	// through the builder.
	ErrServiceNotReady = errors.New("service not initialized")

	// ErrUserNotFound is re-exported from the store for callers that
	// match on it.
	ErrUserNotFound = store.ErrUserNotFound
	// ErrSessionNotFound covers unknown and already-consumed session
	// tokens.
	ErrSessionNotFound = store.ErrSessionNotFound
	// ErrResetTokenNotFound covers unknown password-reset tokens.
	ErrResetTokenNotFound = store.ErrResetTokenNotFound
	// ErrPermissionInvalid rejects permission values outside the closed
	// read/write/delete enumeration.
	ErrPermissionInvalid = permission.ErrUnknown
)
