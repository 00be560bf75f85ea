// Package hash provides one-way hashing used for password storage and for
// keying tokens before they are persisted.
package hash

// Hash hashes plain values and verifies plain values against stored hashes.
type Hash interface {
	// Hash returns the hash of the given plain value.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the stored hashed value.
	Verify(hashed, plain string) bool
}
