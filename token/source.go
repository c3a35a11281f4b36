package token

import (
	"time"

	"github.com/google/uuid"
)

// Pair is a freshly minted access/refresh token pair. The two values are
// always distinct and unique across all pairs ever issued by a source.
type Pair struct {
	Access  string
	Refresh string
}

// Source mints token pairs for new sessions. accessExpiry is the access
// token expiry recorded on the session; sources may embed it in the token
// material but must not enforce it.
type Source interface {
	Issue(userID string, accessExpiry time.Time) (Pair, error)
}

// Opaque mints prefixed random tokens with no internal structure.
type Opaque struct{}

// Issue returns an access_/refresh_ prefixed pair of random identifiers.
func (Opaque) Issue(string, time.Time) (Pair, error) {
	return Pair{
		Access:  "access_" + uuid.NewString(),
		Refresh: "refresh_" + uuid.NewString(),
	}, nil
}
