// Package session provides the interface for login session persistence
package session

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/rpg-sheets/internal/repositories/session Repository

// Session binds an opaque bearer token to a user until it expires
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Repository defines the interface for session persistence
type Repository interface {
	// Create stores a session under its token with the given TTL
	// Returns errors.InvalidArgument for validation failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a live session
	// Returns errors.NotFound if the token is unknown or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes one session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// DeleteByUser removes every session of a user
	DeleteByUser(ctx context.Context, input DeleteByUserInput) (*DeleteByUserOutput, error)
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Token  string
	UserID int64
	TTL    time.Duration
}

// CreateOutput contains the created session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for getting a session
type GetInput struct {
	Token string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	Token string
}

// DeleteOutput is empty for now
type DeleteOutput struct{}

// DeleteByUserInput contains parameters for revoking a user's sessions
type DeleteByUserInput struct {
	UserID int64
}

// DeleteByUserOutput reports how many sessions were revoked
type DeleteByUserOutput struct {
	Revoked int
}
