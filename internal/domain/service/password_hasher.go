// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The resulting
	// string embeds the algorithm identifier and work factor, so verification
	// is self-describing.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It returns false for any mismatch or malformed hash; it never errors
	// for a wrong password.
	Check(password, hash string) bool

	// NeedsRehash reports whether the hash was produced with a work factor
	// different from the currently configured one, enabling lazy migration
	// on the next successful login.
	NeedsRehash(hash string) bool
}
