// Package v1alpha1 serves the sheet API over gRPC with JSON-encoded messages
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/account"
)

// AccountHandlerConfig holds dependencies for the account handler
type AccountHandlerConfig struct {
	AccountService account.Service
}

// Validate ensures all required dependencies are present
func (c *AccountHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.AccountService == nil {
		return errors.InvalidArgument("account service is required")
	}
	return nil
}

// AccountHandler implements AccountServiceServer
type AccountHandler struct {
	accountService account.Service
}

var _ AccountServiceServer = (*AccountHandler)(nil)

// NewAccountHandler creates a new account handler with the given configuration
func NewAccountHandler(cfg *AccountHandlerConfig) (*AccountHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &AccountHandler{
		accountService: cfg.AccountService,
	}, nil
}

// Register creates an account. The first account becomes admin.
func (h *AccountHandler) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	out, err := h.accountService.Register(ctx, &account.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RegisterResponse{User: out.User}, nil
}

// Login opens a session and returns its bearer token
func (h *AccountHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	out, err := h.accountService.Login(ctx, &account.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoginResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt.Unix(),
		User:      out.User,
	}, nil
}

// Logout revokes the session the call was made with
func (h *AccountHandler) Logout(ctx context.Context, _ *LogoutRequest) (*LogoutResponse, error) {
	token, ok := tokenFromContext(ctx)
	if !ok {
		return nil, errors.ToGRPCError(errors.Unauthenticated("no session"))
	}

	if _, err := h.accountService.Logout(ctx, &account.LogoutInput{Token: token}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LogoutResponse{}, nil
}

// WhoAmI returns the calling actor
func (h *AccountHandler) WhoAmI(ctx context.Context, _ *WhoAmIRequest) (*WhoAmIResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	return &WhoAmIResponse{Actor: actor}, nil
}

// SetDisplayPreference changes the caller's display preference
func (h *AccountHandler) SetDisplayPreference(
	ctx context.Context,
	req *SetDisplayPreferenceRequest,
) (*SetDisplayPreferenceResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.accountService.SetDisplayPreference(ctx, &account.SetDisplayPreferenceInput{
		Actor:      actor,
		Preference: req.Preference,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetDisplayPreferenceResponse{User: out.User}, nil
}

// ListUsers lists every account
func (h *AccountHandler) ListUsers(ctx context.Context, _ *ListUsersRequest) (*ListUsersResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.accountService.ListUsers(ctx, &account.ListUsersInput{Actor: actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListUsersResponse{Users: out.Users}, nil
}

// SetAdmin grants or revokes admin rights
func (h *AccountHandler) SetAdmin(ctx context.Context, req *SetAdminRequest) (*SetAdminResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.accountService.SetAdmin(ctx, &account.SetAdminInput{
		Actor:   actor,
		UserID:  req.UserID,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetAdminResponse{User: out.User}, nil
}

// DeleteUser deletes an account with everything it owns
func (h *AccountHandler) DeleteUser(ctx context.Context, req *DeleteUserRequest) (*DeleteUserResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.accountService.DeleteUser(ctx, &account.DeleteUserInput{
		Actor:  actor,
		UserID: req.UserID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteUserResponse{RevokedSessions: out.RevokedSessions}, nil
}
