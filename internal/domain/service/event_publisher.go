package service

import (
	"context"
	"time"
)

// UserRegisteredEvent is emitted after a registration transaction commits.
// It carries no credential material, only the public identity of the new user.
type UserRegisteredEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishUserRegistered publishes a registration event for async consumers
	// (welcome mail, profile bootstrap, analytics).
	PublishUserRegistered(ctx context.Context, event *UserRegisteredEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
