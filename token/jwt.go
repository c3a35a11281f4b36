package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// JWT mints HS256-signed token pairs. A random jti claim keeps every
// minted token unique even for the same user and expiry.
type JWT struct {
	key    []byte
	issuer string
}

// Claims is the claim set carried by tokens minted by [JWT].
type Claims struct {
	UID  string `json:"uid"`
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// NewJWT returns a signed-token source. The signing key is required.
func NewJWT(key []byte, issuer string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("jwt source requires a signing key")
	}
	return &JWT{key: key, issuer: issuer}, nil
}

// Issue mints a signed access/refresh pair for userID. The access token
// carries accessExpiry as its exp claim; the refresh token carries none,
// since refresh tokens are retired only by logout or rotation.
func (s *JWT) Issue(userID string, accessExpiry time.Time) (Pair, error) {
	access, err := s.sign(userID, typeAccess, &accessExpiry)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := s.sign(userID, typeRefresh, nil)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (s *JWT) sign(userID, tokenType string, expiry *time.Time) (string, error) {
	claims := Claims{
		UID:  userID,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if expiry != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiry)
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Parse verifies a token minted by this source and returns its claims.
// It is a convenience for external consumers; nothing in the core calls
// it.
func (s *JWT) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
