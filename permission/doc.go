// Package permission defines the closed read/write/delete permission
// enumeration and a compact bitmask set over it.
//
// The enumeration is deliberately closed: parsing or storing any other
// value fails with [ErrUnknown] rather than being silently carried.
package permission
