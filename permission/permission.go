package permission

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Permission is one of the closed set of comment-feed capabilities.
type Permission string

const (
	// Read allows viewing the comment feed.
	Read Permission = "read"
	// Write allows posting new comments.
	Write Permission = "write"
	// Delete allows removing any comment from the feed.
	Delete Permission = "delete"
)

// ErrUnknown is returned when a value outside the read/write/delete
// enumeration is parsed or stored.
var ErrUnknown = errors.New("unknown permission")

// All lists every valid permission in canonical order.
var All = []Permission{Read, Write, Delete}

var bits = map[Permission]Set{
	Read:   1 << 0,
	Write:  1 << 1,
	Delete: 1 << 2,
}

const validMask Set = 1<<0 | 1<<1 | 1<<2

// Set is a bitmask over the closed permission enumeration. The zero value
// is the empty set.
type Set uint8

// NewSet builds a Set from the given permissions. Any value outside the
// closed enumeration fails with [ErrUnknown].
func NewSet(perms ...Permission) (Set, error) {
	var s Set
	for _, p := range perms {
		bit, ok := bits[p]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknown, string(p))
		}
		s |= bit
	}
	return s, nil
}

// MustSet is NewSet for statically known permissions. It panics on an
// unknown value.
func MustSet(perms ...Permission) Set {
	s, err := NewSet(perms...)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse builds a Set from raw string values, rejecting anything outside
// the enumeration.
func Parse(values []string) (Set, error) {
	perms := make([]Permission, len(values))
	for i, v := range values {
		perms[i] = Permission(v)
	}
	return NewSet(perms...)
}

// Default is the permission set granted on signup.
func Default() Set {
	return bits[Read]
}

// Has reports whether p is in the set.
func (s Set) Has(p Permission) bool {
	bit, ok := bits[p]
	if !ok {
		return false
	}
	return s&bit != 0
}

// Valid reports whether the set contains only known permission bits.
func (s Set) Valid() bool {
	return s&^validMask == 0
}

// List returns the permissions in the set in canonical order.
func (s Set) List() []Permission {
	var out []Permission
	for _, p := range All {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Strings returns the set as raw string values in canonical order.
func (s Set) Strings() []string {
	list := s.List()
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = string(p)
	}
	return out
}

func (s Set) String() string {
	return strings.Join(s.Strings(), ",")
}

// MarshalJSON encodes the set as a JSON array of permission names.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes a JSON array of permission names, rejecting
// unknown values.
func (s *Set) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	parsed, err := Parse(values)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
