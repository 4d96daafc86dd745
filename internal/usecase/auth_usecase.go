// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// It is transient, constructed per request by the delivery layer after
// transport parsing; the core never sees raw bodies.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Repassword string
}

// --- Output DTOs ---

// RegisterOutput returns the store-assigned identifier of the new user.
// The identifier is the sole handle downstream subsystems use.
type RegisterOutput struct {
	UserID int64
}

// AuthUsecase defines the interface for registration-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
