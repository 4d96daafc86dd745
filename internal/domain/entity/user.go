// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core entity of the platform, representing one registered account.
// Username and Email are unique across all users; PasswordHash is an opaque
// digest and never holds the raw password.
type User struct {
	ID           int64  // Store-assigned numeric identifier, immutable once created.
	Username     string // Unique display/login name chosen at registration.
	Email        string // Unique contact email.
	PasswordHash string // Digest produced by the configured password hasher.
}
