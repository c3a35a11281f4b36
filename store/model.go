package store

import (
	"time"

	"github.com/feedgate/feedgate/permission"
)

// User is an account record. PasswordHash is an opaque credential in the
// hasher's own encoding and never serializes.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Permissions  permission.Set `json:"permissions"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Session is a live access/refresh token pair bound to one user.
// ExpiresAt is the access-token expiry recorded at issue time.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// PasswordResetToken is a single-use, time-boxed recovery token bound to
// one user. At most one live token exists per user.
type PasswordResetToken struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Comment is one entry in the shared feed. UserName is a snapshot of the
// author's name at post time and does not follow later renames.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}
