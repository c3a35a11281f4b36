// Package store holds the in-memory directory that owns every collection
// in the system: users, sessions, password-reset tokens, and comments.
//
// # Design
//
// All mutation goes through Directory methods behind a single mutex;
// collections are never handed out by reference, only as copies. The
// session collection sits behind the SessionStore interface so that it
// can optionally live in redis (shared between processes) instead of the
// default in-process slice.
//
// # Architecture boundaries
//
// The directory is data access plus the integrity constraints that only
// hold under its lock, such as email uniqueness and single-use token
// consumption. Business rules such as credential checks and permission
// gating belong to the service layer in the root package.
package store
