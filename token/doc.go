// Package token mints the access/refresh token pairs bound to sessions.
//
// Tokens are opaque to the rest of the system: every store and service
// operation matches them by string equality only. The JWT source exists
// so that external consumers can verify token provenance out of band; the
// core never parses what it issued.
package token
