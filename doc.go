// Package feedgate is the session and authorization core of a demo
// comment-feed application.
//
// It covers credential storage, login/logout session issuance, the
// access/refresh token lifecycle, single-use password-reset tokens, and
// permission-gated mutation of a shared comment collection. State lives
// in an in-process directory by default; sessions can optionally be kept
// in redis.
//
// Build a [Service] through the builder:
//
//	svc, err := feedgate.New().
//		WithConfig(feedgate.DefaultConfig()).
//		Build()
//
// The UI layer (HTTP handlers, a TUI, tests) talks only to the Service
// methods and to [client.State] for cached identity.
package feedgate
