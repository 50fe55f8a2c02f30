// Package account defines the interface for registration, login sessions
// and account administration
package account

//go:generate mockgen -destination=mock/mock_service.go -package=accountmock github.com/KirkDiggler/rpg-sheets/internal/services/account Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
)

// Password rules
const (
	MinPasswordLength = 6
)

// Service defines the interface for account operations
type Service interface {
	// Registration and sessions
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// Self-service
	SetDisplayPreference(ctx context.Context, input *SetDisplayPreferenceInput) (*SetDisplayPreferenceOutput, error)

	// Administration; the actor must be an admin
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	SetAdmin(ctx context.Context, input *SetAdminInput) (*SetAdminOutput, error)
	DeleteUser(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error)
}

// RegisterInput defines the request for creating an account
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// RegisterOutput defines the response for creating an account
type RegisterOutput struct {
	User *entities.User
}

// LoginInput defines the request for opening a session
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput defines the response for opening a session
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

// LogoutInput defines the request for closing a session
type LogoutInput struct {
	Token string
}

// LogoutOutput defines the response for closing a session
type LogoutOutput struct{}

// AuthenticateInput defines the request for resolving a session token
type AuthenticateInput struct {
	Token string
}

// AuthenticateOutput carries the actor behind a live session. The actor is
// rebuilt from the stored account, so admin and preference changes apply on
// the next request.
type AuthenticateOutput struct {
	Actor entities.Actor
}

// SetDisplayPreferenceInput defines the request for changing the caller's
// display preference
type SetDisplayPreferenceInput struct {
	Actor      entities.Actor
	Preference string
}

// SetDisplayPreferenceOutput defines the response for changing the display
// preference
type SetDisplayPreferenceOutput struct {
	User *entities.User
}

// ListUsersInput defines the request for listing accounts
type ListUsersInput struct {
	Actor entities.Actor
}

// ListUsersOutput defines the response for listing accounts
type ListUsersOutput struct {
	Users []*entities.User
}

// SetAdminInput defines the request for granting or revoking admin rights
type SetAdminInput struct {
	Actor   entities.Actor
	UserID  int64
	IsAdmin bool
}

// SetAdminOutput defines the response for granting or revoking admin rights
type SetAdminOutput struct {
	User *entities.User
}

// DeleteUserInput defines the request for deleting an account
type DeleteUserInput struct {
	Actor  entities.Actor
	UserID int64
}

// DeleteUserOutput defines the response for deleting an account
type DeleteUserOutput struct {
	RevokedSessions int
}
