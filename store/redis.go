package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps transport-level failures of the redis
// session backend.
var ErrRedisUnavailable = errors.New("session redis unavailable")

const sessionRecordVersionV1 = 1

// RedisSessions stores sessions in redis under two keys per session, one
// per token, so that lookup by either token is a single GET. Keys carry
// a retention TTL as a safety net against abandoned sessions; nothing in
// the core depends on it.
type RedisSessions struct {
	redis     *redis.Client
	prefix    string
	retention time.Duration
}

// NewRedisSessions wraps client with the given key prefix. retention is
// the TTL applied to session keys; zero means keys never expire.
func NewRedisSessions(client *redis.Client, prefix string, retention time.Duration) *RedisSessions {
	if prefix == "" {
		prefix = "fg"
	}
	return &RedisSessions{
		redis:     client,
		prefix:    prefix,
		retention: retention,
	}
}

func (r *RedisSessions) key(token string) string {
	return r.prefix + ":tok:" + token
}

// Save writes the session under both token keys.
func (r *RedisSessions) Save(ctx context.Context, s *Session) error {
	encoded, err := encodeSessionRecord(s)
	if err != nil {
		return err
	}

	_, err = r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(s.AccessToken), encoded, r.retention)
		pipe.Set(ctx, r.key(s.RefreshToken), encoded, r.retention)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// FindByToken resolves the session stored under either token key.
func (r *RedisSessions) FindByToken(ctx context.Context, token string) (*Session, error) {
	data, err := r.redis.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return decodeSessionRecord(data)
}

// Remove deletes the session matching either token, dropping both of its
// keys.
func (r *RedisSessions) Remove(ctx context.Context, token string) (bool, error) {
	data, err := r.redis.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	s, err := decodeSessionRecord(data)
	if err != nil {
		return false, err
	}

	deleted, err := r.redis.Del(ctx, r.key(s.AccessToken), r.key(s.RefreshToken)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return deleted > 0, nil
}

// Rotate consumes refreshToken under a WATCH transaction so that two
// racing rotates of the same token cannot both succeed, then saves the
// minted replacement.
func (r *RedisSessions) Rotate(ctx context.Context, refreshToken string, mint func(userID string) (*Session, error)) (*Session, error) {
	const maxRetries = 4
	watchKey := r.key(refreshToken)

	for i := 0; i < maxRetries; i++ {
		var rotated *Session

		err := r.redis.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, watchKey).Bytes()
			if err != nil {
				return err
			}

			old, err := decodeSessionRecord(data)
			if err != nil {
				return err
			}
			// An access token resolves the same record; only the refresh
			// half may rotate.
			if old.RefreshToken != refreshToken {
				return ErrSessionNotFound
			}

			next, err := mint(old.UserID)
			if err != nil {
				return err
			}
			encoded, err := encodeSessionRecord(next)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, r.key(old.AccessToken), r.key(old.RefreshToken))
				pipe.Set(ctx, r.key(next.AccessToken), encoded, r.retention)
				pipe.Set(ctx, r.key(next.RefreshToken), encoded, r.retention)
				return nil
			})
			if err != nil {
				return err
			}

			rotated = next
			return nil
		}, watchKey)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			switch {
			case errors.Is(err, redis.Nil):
				return nil, ErrSessionNotFound
			case errors.Is(err, ErrSessionNotFound):
				return nil, ErrSessionNotFound
			default:
				return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
			}
		}

		out := *rotated
		return &out, nil
	}

	// Every attempt lost the WATCH race. The token may still be live, so
	// this is a backend-contention failure, not an unknown token.
	return nil, fmt.Errorf("%w: rotate retries exhausted", ErrRedisUnavailable)
}

func encodeSessionRecord(s *Session) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(sessionRecordVersionV1)
	for _, field := range []string{s.ID, s.UserID, s.AccessToken, s.RefreshToken} {
		if len(field) > 65535 {
			return nil, errors.New("session field too long")
		}
		if err := binary.Write(&buf, binary.BigEndian, uint16(len(field))); err != nil {
			return nil, err
		}
		buf.WriteString(field)
	}
	if err := binary.Write(&buf, binary.BigEndian, s.ExpiresAt.Unix()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeSessionRecord(data []byte) (*Session, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != sessionRecordVersionV1 {
		return nil, errors.New("invalid session record version")
	}

	fields := make([]string, 4)
	for i := range fields {
		var length uint16
		if err := binary.Read(reader, binary.BigEndian, &length); err != nil {
			return nil, err
		}
		raw := make([]byte, length)
		if _, err := io.ReadFull(reader, raw); err != nil {
			return nil, err
		}
		fields[i] = string(raw)
	}

	var expiresAt int64
	if err := binary.Read(reader, binary.BigEndian, &expiresAt); err != nil {
		return nil, err
	}

	return &Session{
		ID:           fields[0],
		UserID:       fields[1],
		AccessToken:  fields[2],
		RefreshToken: fields[3],
		ExpiresAt:    time.Unix(expiresAt, 0).UTC(),
	}, nil
}
