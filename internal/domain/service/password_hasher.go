// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm, keeping the domain pure. The
// contract: deterministic-per-input for schemes without a salt, equal
// passwords verify against their own hash, output is an opaque string.
type PasswordHasher interface {
	// Hash generates a digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
