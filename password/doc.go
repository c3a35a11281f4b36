// Package password provides argon2id credential hashing in PHC string
// format.
//
// # Design
//
// Hash produces a self-describing $argon2id$... string carrying the cost
// parameters and salt, so stored credentials survive configuration
// changes. Verify re-derives the key with the parameters embedded in the
// stored string and compares in constant time.
//
// # What this package must NOT do
//
//   - Persist anything.
//   - Import any sibling package.
package password
