// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"matcha/internal/domain/entity"
)

// ErrDuplicateCredentials is returned by Create when the store rejects an
// insert on the username or email uniqueness constraint. It is the backstop
// for the race where two registrations pass the duplicate check before
// either commits; callers are expected to reinterpret it as a conflict.
var ErrDuplicateCredentials = errors.New("username or email already exists")

// DuplicateCheck reports, independently for each credential, whether it is
// already associated with an existing user. Computed per registration
// attempt and never stored.
type DuplicateCheck struct {
	UsernameExists bool
	EmailExists    bool
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and writes the store-assigned ID back to
	// the entity. The caller must have verified credential uniqueness
	// within the same transaction; a constraint rejection still surfaces
	// as ErrDuplicateCredentials.
	Create(ctx context.Context, user *entity.User) error

	// CheckDuplicateCredentials answers whether the username and the email
	// each already exist. Pure read, no side effects.
	CheckDuplicateCredentials(ctx context.Context, username, email string) (DuplicateCheck, error)
}
