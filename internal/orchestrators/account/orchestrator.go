// Package account implements the account orchestrator: registration,
// bcrypt-verified logins backed by Redis sessions, and admin operations
package account

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/session"
	userrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/user"
	"github.com/KirkDiggler/rpg-sheets/internal/services/account"
)

// DefaultSessionTTL is used when Config.SessionTTL is zero
const DefaultSessionTTL = 24 * time.Hour

const (
	tokenPrefix        = "sess"
	errBadCredentials  = "invalid username or password"
	errSessionInvalid  = "session expired or invalid"
	errAdminRequired   = "admin privileges required"
	errSelfDemotion    = "admins cannot revoke their own admin flag"
	errSelfDeletion    = "admins cannot delete their own account"
	errTokenRequired   = "session token is required"
	errInputIsRequired = "input is required"
)

// Config holds the dependencies for the account orchestrator
type Config struct {
	UserRepo    userrepo.Repository
	SessionRepo sessionrepo.Repository

	// Optional
	TokenGenerator idgen.Generator
	Clock          clock.Clock
	SessionTTL     time.Duration
	BcryptCost     int
	Logger         *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}
	if c.BcryptCost != 0 && (c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost) {
		vb.Fieldf("BcryptCost", "must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return vb.Build()
}

// Orchestrator implements the account.Service interface
type Orchestrator struct {
	userRepo    userrepo.Repository
	sessionRepo sessionrepo.Repository
	tokens      idgen.Generator
	clock       clock.Clock
	sessionTTL  time.Duration
	bcryptCost  int
	logger      *zap.Logger
}

// New creates a new account orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		userRepo:    cfg.UserRepo,
		sessionRepo: cfg.SessionRepo,
		tokens:      cfg.TokenGenerator,
		clock:       cfg.Clock,
		sessionTTL:  cfg.SessionTTL,
		bcryptCost:  cfg.BcryptCost,
		logger:      cfg.Logger,
	}
	if o.tokens == nil {
		o.tokens = idgen.NewUUID(tokenPrefix)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.sessionTTL == 0 {
		o.sessionTTL = DefaultSessionTTL
	}
	if o.bcryptCost == 0 {
		o.bcryptCost = bcrypt.DefaultCost
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	o.logger = o.logger.Named("account")

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ account.Service = (*Orchestrator)(nil)

// Register creates an account. The first account becomes an admin.
func (o *Orchestrator) Register(ctx context.Context, input *account.RegisterInput) (*account.RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}

	username := strings.TrimSpace(input.Username)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", username, vb)
	errors.ValidateMinLength("password", input.Password, account.MinPasswordLength, vb)
	errors.ValidateMatch("confirm_password", input.Password, input.ConfirmPassword, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), o.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	created, err := o.userRepo.Create(ctx, userrepo.CreateInput{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    o.clock.Now(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register %q", username)
	}

	o.logger.Info("registered account",
		zap.Int64("user_id", created.User.ID),
		zap.Bool("is_admin", created.User.IsAdmin))

	return &account.RegisterOutput{User: created.User}, nil
}

// Login verifies credentials and opens a session. Unknown users and wrong
// passwords fail the same way.
func (o *Orchestrator) Login(ctx context.Context, input *account.LoginInput) (*account.LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Unauthenticated(errBadCredentials)
	}

	found, err := o.userRepo.GetByUsername(ctx, userrepo.GetByUsernameInput{Username: username})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated(errBadCredentials)
		}
		return nil, errors.Wrap(err, "failed to look up account")
	}

	err = bcrypt.CompareHashAndPassword([]byte(found.User.PasswordHash), []byte(input.Password))
	if err != nil {
		o.logger.Info("rejected login", zap.Int64("user_id", found.User.ID))
		return nil, errors.Unauthenticated(errBadCredentials)
	}

	created, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{
		Token:  o.tokens.Generate(),
		UserID: found.User.ID,
		TTL:    o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	return &account.LoginOutput{
		Token:     created.Session.Token,
		ExpiresAt: created.Session.ExpiresAt,
		User:      found.User,
	}, nil
}

// Logout revokes one session
func (o *Orchestrator) Logout(ctx context.Context, input *account.LogoutInput) (*account.LogoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenRequired)
	}

	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{Token: input.Token}); err != nil {
		return nil, errors.Wrap(err, "failed to revoke session")
	}

	return &account.LogoutOutput{}, nil
}

// Authenticate resolves a token to the actor behind it
func (o *Orchestrator) Authenticate(ctx context.Context, input *account.AuthenticateInput) (*account.AuthenticateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}
	if input.Token == "" {
		return nil, errors.Unauthenticated(errTokenRequired)
	}

	sess, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{Token: input.Token})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated(errSessionInvalid)
		}
		return nil, errors.Wrap(err, "failed to load session")
	}

	found, err := o.userRepo.Get(ctx, userrepo.GetInput{ID: sess.Session.UserID})
	if err != nil {
		if errors.IsNotFound(err) {
			// The account was deleted after the session was issued.
			if _, delErr := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{Token: input.Token}); delErr != nil {
				o.logger.Warn("failed to drop orphaned session", zap.Error(delErr))
			}
			return nil, errors.Unauthenticated(errSessionInvalid)
		}
		return nil, errors.Wrap(err, "failed to load session account")
	}

	return &account.AuthenticateOutput{Actor: entities.ActorFor(found.User)}, nil
}

// SetDisplayPreference stores the actor's own display preference
func (o *Orchestrator) SetDisplayPreference(ctx context.Context, input *account.SetDisplayPreferenceInput) (*account.SetDisplayPreferenceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("actor", input.Actor.UserID, vb)
	errors.ValidateEnum("preference", input.Preference, entities.DisplayPreferences(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updated, err := o.userRepo.SetDisplayPreference(ctx, userrepo.SetDisplayPreferenceInput{
		ID:         input.Actor.UserID,
		Preference: entities.DisplayPreference(input.Preference),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set display preference")
	}

	return &account.SetDisplayPreferenceOutput{User: updated.User}, nil
}

// Admin operations

// ListUsers returns every account
func (o *Orchestrator) ListUsers(ctx context.Context, input *account.ListUsersInput) (*account.ListUsersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	listed, err := o.userRepo.List(ctx, userrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &account.ListUsersOutput{Users: listed.Users}, nil
}

// SetAdmin grants or revokes admin rights on another account
func (o *Orchestrator) SetAdmin(ctx context.Context, input *account.SetAdminInput) (*account.SetAdminOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("user_id", input.UserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.UserID == input.Actor.UserID && !input.IsAdmin {
		return nil, errors.FailedPrecondition(errSelfDemotion)
	}

	updated, err := o.userRepo.SetAdmin(ctx, userrepo.SetAdminInput{
		ID:      input.UserID,
		IsAdmin: input.IsAdmin,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set admin flag")
	}

	o.logger.Info("changed admin flag",
		zap.Int64("actor_id", input.Actor.UserID),
		zap.Int64("user_id", input.UserID),
		zap.Bool("is_admin", input.IsAdmin))

	return &account.SetAdminOutput{User: updated.User}, nil
}

// DeleteUser removes another account with everything it owns and revokes
// its sessions
func (o *Orchestrator) DeleteUser(ctx context.Context, input *account.DeleteUserInput) (*account.DeleteUserOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputIsRequired)
	}
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("user_id", input.UserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.UserID == input.Actor.UserID {
		return nil, errors.FailedPrecondition(errSelfDeletion)
	}

	if _, err := o.userRepo.Delete(ctx, userrepo.DeleteInput{ID: input.UserID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete account")
	}

	// Authenticate rejects sessions of deleted accounts; a failed revocation
	// is only logged.
	revoked := 0
	out, err := o.sessionRepo.DeleteByUser(ctx, sessionrepo.DeleteByUserInput{UserID: input.UserID})
	if err != nil {
		o.logger.Warn("failed to revoke sessions of deleted account",
			zap.Int64("user_id", input.UserID),
			zap.Error(err))
	} else {
		revoked = out.Revoked
	}

	o.logger.Info("deleted account",
		zap.Int64("actor_id", input.Actor.UserID),
		zap.Int64("user_id", input.UserID),
		zap.Int("revoked_sessions", revoked))

	return &account.DeleteUserOutput{RevokedSessions: revoked}, nil
}

func requireAdmin(actor entities.Actor) error {
	if actor.UserID <= 0 {
		return errors.Unauthenticated("actor is required")
	}
	if !actor.IsAdmin {
		return errors.PermissionDenied(errAdminRequired)
	}
	return nil
}
