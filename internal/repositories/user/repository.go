// Package user provides the interface for account persistence
package user

//go:generate mockgen -destination=mock/mock_repository.go -package=usermock github.com/KirkDiggler/rpg-sheets/internal/repositories/user Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
)

// Repository defines the interface for account persistence
type Repository interface {
	// Create stores a new account. The first account ever created is an
	// admin; the count and insert share one transaction.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the username is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an account by ID
	// Returns errors.NotFound if the account doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByUsername retrieves an account by its unique username
	// Returns errors.NotFound if the account doesn't exist
	GetByUsername(ctx context.Context, input GetByUsernameInput) (*GetByUsernameOutput, error)

	// List returns every account ordered by username
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// SetAdmin sets or clears the admin flag
	// Returns errors.NotFound if the account doesn't exist
	SetAdmin(ctx context.Context, input SetAdminInput) (*SetAdminOutput, error)

	// SetDisplayPreference stores the account's display preference
	// Returns errors.InvalidArgument for unknown preferences
	// Returns errors.NotFound if the account doesn't exist
	SetDisplayPreference(ctx context.Context, input SetDisplayPreferenceInput) (*SetDisplayPreferenceOutput, error)

	// Delete removes the account and, through cascades, its characters and
	// everything attached to them
	// Returns errors.NotFound if the account doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating an account
type CreateInput struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateOutput defines the output for creating an account
type CreateOutput struct {
	User *entities.User
}

// GetInput defines the input for getting an account
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting an account
type GetOutput struct {
	User *entities.User
}

// GetByUsernameInput defines the input for looking up an account by name
type GetByUsernameInput struct {
	Username string
}

// GetByUsernameOutput defines the output for looking up an account by name
type GetByUsernameOutput struct {
	User *entities.User
}

// ListInput defines the input for listing accounts
type ListInput struct{}

// ListOutput defines the output for listing accounts
type ListOutput struct {
	Users []*entities.User
}

// SetAdminInput defines the input for changing the admin flag
type SetAdminInput struct {
	ID      int64
	IsAdmin bool
}

// SetAdminOutput defines the output for changing the admin flag
type SetAdminOutput struct {
	User *entities.User
}

// SetDisplayPreferenceInput defines the input for changing the display preference
type SetDisplayPreferenceInput struct {
	ID         int64
	Preference entities.DisplayPreference
}

// SetDisplayPreferenceOutput defines the output for changing the display preference
type SetDisplayPreferenceOutput struct {
	User *entities.User
}

// DeleteInput defines the input for deleting an account
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting an account
type DeleteOutput struct{}
