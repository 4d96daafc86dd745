// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"matcha/internal/domain/service"
)

// sha256Hasher implements PasswordHasher as an unsalted SHA-256 digest over
// the UTF-8 password, rendered as lowercase hex. This reproduces the digest
// format of the original platform so existing password_hash rows keep
// verifying.
//
// Being unsalted and fast, it is a weak construction for credential storage;
// deployments without legacy rows should select the bcrypt scheme instead.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase-hex SHA-256 digest of the password.
// Deterministic: equal passwords always produce equal digests.
func (h *sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:]), nil
}

// Check re-derives the digest and compares it in constant time.
func (h *sha256Hasher) Check(password, hash string) bool {
	sum := sha256.Sum256([]byte(password))
	derived := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}
