package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feedgate/feedgate/permission"
	"github.com/feedgate/feedgate/token"
)

var (
	// ErrUserNotFound is returned by lookups and mutators referencing an
	// unknown user id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned when no session matches the given
	// token, including refresh tokens that were already consumed.
	ErrSessionNotFound = errors.New("session not found")
	// ErrResetTokenNotFound is returned when no password-reset token
	// matches the given value.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrDuplicateEmail is returned by CreateUser when the email is
	// already registered. Uniqueness is enforced under the directory
	// lock so concurrent signups cannot both win.
	ErrDuplicateEmail = errors.New("email already registered")
)

const (
	defaultAccessTTL = 15 * time.Minute
	defaultResetTTL  = time.Hour
)

// Directory owns the user, session, password-reset, and comment
// collections. It is safe for concurrent use; every method is a critical
// section.
type Directory struct {
	mu          sync.Mutex
	users       []User
	comments    []Comment
	resetTokens []PasswordResetToken

	sessions SessionStore
	tokens   token.Source
	now      func() time.Time

	accessTTL time.Duration
	resetTTL  time.Duration
}

// Option configures a Directory.
type Option func(*Directory)

// WithSessionStore replaces the default in-process session backend.
func WithSessionStore(s SessionStore) Option {
	return func(d *Directory) {
		if s != nil {
			d.sessions = s
		}
	}
}

// WithTokenSource replaces the default opaque token source.
func WithTokenSource(src token.Source) Option {
	return func(d *Directory) {
		if src != nil {
			d.tokens = src
		}
	}
}

// WithClock replaces the wall clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) {
		if now != nil {
			d.now = now
		}
	}
}

// WithAccessTTL sets the access-token expiry recorded on new sessions.
func WithAccessTTL(ttl time.Duration) Option {
	return func(d *Directory) {
		if ttl > 0 {
			d.accessTTL = ttl
		}
	}
}

// WithResetTTL sets the expiry window of password-reset tokens.
func WithResetTTL(ttl time.Duration) Option {
	return func(d *Directory) {
		if ttl > 0 {
			d.resetTTL = ttl
		}
	}
}

// NewDirectory builds an empty directory with in-process sessions,
// opaque tokens, and the real clock unless options say otherwise.
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		tokens:    token.Opaque{},
		now:       time.Now,
		accessTTL: defaultAccessTTL,
		resetTTL:  defaultResetTTL,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sessions == nil {
		d.sessions = NewMemorySessions()
	}
	return d
}

// CreateUser appends a new user with a fresh id and creation timestamp.
// The email must not already be registered (case-sensitive exact match);
// the check and the append happen inside one critical section.
func (d *Directory) CreateUser(_ context.Context, name, email, passwordHash string, perms permission.Set) (*User, error) {
	if !perms.Valid() {
		return nil, permission.ErrUnknown
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Permissions:  perms,
		CreatedAt:    d.now(),
	}
	d.users = append(d.users, user)

	out := user
	return &out, nil
}

// FindUserByEmail returns the first user with exactly that email.
// Matching is case-sensitive.
func (d *Directory) FindUserByEmail(_ context.Context, email string) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == email {
			out := d.users[i]
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindUserByID returns the user with that id.
func (d *Directory) FindUserByID(_ context.Context, id string) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == id {
			out := d.users[i]
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateUserPermissions replaces the user's permission set. Sets carrying
// bits outside the closed enumeration are rejected, never stored.
func (d *Directory) UpdateUserPermissions(_ context.Context, id string, perms permission.Set) (*User, error) {
	if !perms.Valid() {
		return nil, permission.ErrUnknown
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == id {
			d.users[i].Permissions = perms
			out := d.users[i]
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateUserPassword replaces the stored credential.
func (d *Directory) UpdateUserPassword(_ context.Context, id, newHash string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == id {
			d.users[i].PasswordHash = newHash
			return nil
		}
	}
	return ErrUserNotFound
}

// Users returns a copy of the user collection in insertion order.
func (d *Directory) Users(_ context.Context) []User {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

// CreateSession mints a fresh token pair for userID and saves the new
// session in the session backend.
func (d *Directory) CreateSession(ctx context.Context, userID string) (*Session, error) {
	sess, err := d.mintSession(userID)
	if err != nil {
		return nil, err
	}
	if err := d.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	out := *sess
	return &out, nil
}

// FindSessionByToken matches either the access or the refresh token.
func (d *Directory) FindSessionByToken(ctx context.Context, tok string) (*Session, error) {
	return d.sessions.FindByToken(ctx, tok)
}

// RemoveSession deletes any session whose access or refresh token equals
// tok. It reports whether a removal occurred.
func (d *Directory) RemoveSession(ctx context.Context, tok string) (bool, error) {
	return d.sessions.Remove(ctx, tok)
}

// RefreshSession is a destructive rotate: the session holding
// refreshToken is deleted and a brand-new session for the same user is
// created and returned. The old pair is permanently invalid afterwards
// even if the caller never reads the result.
func (d *Directory) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	return d.sessions.Rotate(ctx, refreshToken, d.mintSession)
}

func (d *Directory) mintSession(userID string) (*Session, error) {
	expiresAt := d.now().Add(d.accessTTL)
	pair, err := d.tokens.Issue(userID, expiresAt)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

// CreatePasswordResetToken evicts every existing token for userID and
// creates a fresh one with the configured expiry window.
func (d *Directory) CreatePasswordResetToken(_ context.Context, userID string) (*PasswordResetToken, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.resetTokens[:0]
	for _, rt := range d.resetTokens {
		if rt.UserID != userID {
			kept = append(kept, rt)
		}
	}
	d.resetTokens = kept

	rt := PasswordResetToken{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: d.now().Add(d.resetTTL),
	}
	d.resetTokens = append(d.resetTokens, rt)

	out := rt
	return &out, nil
}

// FindPasswordResetToken returns the token record regardless of expiry;
// the expiry check is the service layer's lazy concern.
func (d *Directory) FindPasswordResetToken(_ context.Context, tok string) (*PasswordResetToken, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.resetTokens {
		if d.resetTokens[i].Token == tok {
			out := d.resetTokens[i]
			return &out, nil
		}
	}
	return nil, ErrResetTokenNotFound
}

// ConsumePasswordResetToken removes the token record and returns it in
// one critical section, so a token presented by two racing callers is
// honored at most once. Expiry is still the caller's judgment; an
// expired record is consumed and returned like any other.
func (d *Directory) ConsumePasswordResetToken(_ context.Context, tok string) (*PasswordResetToken, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.resetTokens {
		if d.resetTokens[i].Token == tok {
			out := d.resetTokens[i]
			d.resetTokens = append(d.resetTokens[:i], d.resetTokens[i+1:]...)
			return &out, nil
		}
	}
	return nil, ErrResetTokenNotFound
}

// RemovePasswordResetToken deletes the token record, reporting whether a
// removal occurred.
func (d *Directory) RemovePasswordResetToken(_ context.Context, tok string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.resetTokens[:0]
	removed := false
	for _, rt := range d.resetTokens {
		if rt.Token == tok {
			removed = true
			continue
		}
		kept = append(kept, rt)
	}
	d.resetTokens = kept
	return removed, nil
}

// CreateComment appends a comment carrying a snapshot of the author's
// name at post time.
func (d *Directory) CreateComment(_ context.Context, content string, author User) (*Comment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := Comment{
		ID:        uuid.NewString(),
		Content:   content,
		UserID:    author.ID,
		UserName:  author.Name,
		CreatedAt: d.now(),
	}
	d.comments = append(d.comments, c)

	out := c
	return &out, nil
}

// DeleteComment removes the comment with that id, reporting whether a
// removal occurred.
func (d *Directory) DeleteComment(_ context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.comments[:0]
	removed := false
	for _, c := range d.comments {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	d.comments = kept
	return removed, nil
}

// Comments returns a copy of the comment collection in insertion order.
// Display order (newest first) is the caller's concern.
func (d *Directory) Comments(_ context.Context) []Comment {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Comment, len(d.comments))
	copy(out, d.comments)
	return out
}
