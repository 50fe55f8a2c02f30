package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	accountorch "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/account"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/rpg-sheets/internal/pkg/idgen/mock"
	sessionrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/rpg-sheets/internal/repositories/session/mock"
	userrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/user"
	usermock "github.com/KirkDiggler/rpg-sheets/internal/repositories/user/mock"
	"github.com/KirkDiggler/rpg-sheets/internal/services/account"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUsers    *usermock.MockRepository
	mockSessions *sessionmock.MockRepository
	mockTokens   *idgenmock.MockGenerator
	clock        *clock.Fixed
	orchestrator *accountorch.Orchestrator
	ctx          context.Context

	admin  entities.Actor
	player entities.Actor
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = usermock.NewMockRepository(s.ctrl)
	s.mockSessions = sessionmock.NewMockRepository(s.ctrl)
	s.mockTokens = idgenmock.NewMockGenerator(s.ctrl)
	s.clock = &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = accountorch.New(&accountorch.Config{
		UserRepo:       s.mockUsers,
		SessionRepo:    s.mockSessions,
		TokenGenerator: s.mockTokens,
		Clock:          s.clock,
		SessionTTL:     time.Hour,
		BcryptCost:     bcrypt.MinCost,
	})
	s.Require().NoError(err)

	s.admin = entities.Actor{UserID: 1, Username: "thorin", IsAdmin: true}
	s.player = entities.Actor{UserID: 2, Username: "smaug"}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(h)
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("nil config", func() {
		_, err := accountorch.New(nil)
		s.Error(err)
	})

	s.Run("missing repositories", func() {
		_, err := accountorch.New(&accountorch.Config{})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("bcrypt cost out of range", func() {
		_, err := accountorch.New(&accountorch.Config{
			UserRepo:    s.mockUsers,
			SessionRepo: s.mockSessions,
			BcryptCost:  bcrypt.MaxCost + 1,
		})
		s.Error(err)
	})

	s.Run("defaults fill optional dependencies", func() {
		o, err := accountorch.New(&accountorch.Config{
			UserRepo:    s.mockUsers,
			SessionRepo: s.mockSessions,
		})
		s.NoError(err)
		s.NotNil(o)
	})
}

func (s *OrchestratorTestSuite) TestRegister() {
	s.Run("stores a bcrypt hash of the password", func() {
		s.mockUsers.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in userrepo.CreateInput) (*userrepo.CreateOutput, error) {
				s.Equal("thorin", in.Username)
				s.Equal(s.clock.Now(), in.CreatedAt)
				s.NoError(bcrypt.CompareHashAndPassword([]byte(in.PasswordHash), []byte("arkenstone")))
				return &userrepo.CreateOutput{User: &entities.User{ID: 1, Username: in.Username, IsAdmin: true}}, nil
			})

		out, err := s.orchestrator.Register(s.ctx, &account.RegisterInput{
			Username:        "  thorin ",
			Password:        "arkenstone",
			ConfirmPassword: "arkenstone",
		})
		s.Require().NoError(err)
		s.Equal(int64(1), out.User.ID)
		s.True(out.User.IsAdmin)
	})

	s.Run("rejects invalid registrations", func() {
		testCases := []struct {
			name  string
			input *account.RegisterInput
		}{
			{"nil input", nil},
			{"blank username", &account.RegisterInput{Username: " ", Password: "secret1", ConfirmPassword: "secret1"}},
			{"short password", &account.RegisterInput{Username: "bilbo", Password: "ring", ConfirmPassword: "ring"}},
			{"mismatched confirmation", &account.RegisterInput{Username: "bilbo", Password: "secret1", ConfirmPassword: "secret2"}},
		}

		for _, tc := range testCases {
			_, err := s.orchestrator.Register(s.ctx, tc.input)
			s.Error(err, tc.name)
			s.True(errors.IsInvalidArgument(err), tc.name)
		}
	})

	s.Run("duplicate username keeps its code", func() {
		s.mockUsers.EXPECT().
			Create(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExists("username already taken"))

		_, err := s.orchestrator.Register(s.ctx, &account.RegisterInput{
			Username:        "thorin",
			Password:        "arkenstone",
			ConfirmPassword: "arkenstone",
		})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *OrchestratorTestSuite) TestLogin() {
	user := &entities.User{ID: 2, Username: "smaug", PasswordHash: s.hash("treasure")}

	s.Run("opens a session on valid credentials", func() {
		expires := s.clock.Now().Add(time.Hour)
		s.mockUsers.EXPECT().
			GetByUsername(s.ctx, userrepo.GetByUsernameInput{Username: "smaug"}).
			Return(&userrepo.GetByUsernameOutput{User: user}, nil)
		s.mockTokens.EXPECT().Generate().Return("sess_1")
		s.mockSessions.EXPECT().
			Create(s.ctx, sessionrepo.CreateInput{Token: "sess_1", UserID: 2, TTL: time.Hour}).
			Return(&sessionrepo.CreateOutput{Session: &sessionrepo.Session{
				Token:     "sess_1",
				UserID:    2,
				CreatedAt: s.clock.Now(),
				ExpiresAt: expires,
			}}, nil)

		out, err := s.orchestrator.Login(s.ctx, &account.LoginInput{Username: "smaug", Password: "treasure"})
		s.Require().NoError(err)
		s.Equal("sess_1", out.Token)
		s.Equal(expires, out.ExpiresAt)
		s.Equal(user, out.User)
	})

	s.Run("wrong password is unauthenticated", func() {
		s.mockUsers.EXPECT().
			GetByUsername(s.ctx, gomock.Any()).
			Return(&userrepo.GetByUsernameOutput{User: user}, nil)

		_, err := s.orchestrator.Login(s.ctx, &account.LoginInput{Username: "smaug", Password: "gold"})
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("unknown user fails like a wrong password", func() {
		s.mockUsers.EXPECT().
			GetByUsername(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("user not found"))

		_, err := s.orchestrator.Login(s.ctx, &account.LoginInput{Username: "gandalf", Password: "treasure"})
		s.True(errors.IsUnauthenticated(err))
		s.Equal("invalid username or password", errors.GetMessage(err))
	})

	s.Run("blank credentials skip the lookup", func() {
		_, err := s.orchestrator.Login(s.ctx, &account.LoginInput{Username: "", Password: ""})
		s.True(errors.IsUnauthenticated(err))
	})
}

func (s *OrchestratorTestSuite) TestLogout() {
	s.mockSessions.EXPECT().
		Delete(s.ctx, sessionrepo.DeleteInput{Token: "sess_1"}).
		Return(&sessionrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.Logout(s.ctx, &account.LogoutInput{Token: "sess_1"})
	s.NoError(err)

	_, err = s.orchestrator.Logout(s.ctx, &account.LogoutInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAuthenticate() {
	s.Run("builds the actor from the stored account", func() {
		s.mockSessions.EXPECT().
			Get(s.ctx, sessionrepo.GetInput{Token: "sess_1"}).
			Return(&sessionrepo.GetOutput{Session: &sessionrepo.Session{Token: "sess_1", UserID: 1}}, nil)
		s.mockUsers.EXPECT().
			Get(s.ctx, userrepo.GetInput{ID: 1}).
			Return(&userrepo.GetOutput{User: &entities.User{
				ID:                1,
				Username:          "thorin",
				IsAdmin:           true,
				DisplayPreference: entities.DisplayDark,
			}}, nil)

		out, err := s.orchestrator.Authenticate(s.ctx, &account.AuthenticateInput{Token: "sess_1"})
		s.Require().NoError(err)
		s.Equal(entities.Actor{
			UserID:            1,
			Username:          "thorin",
			IsAdmin:           true,
			DisplayPreference: entities.DisplayDark,
		}, out.Actor)
	})

	s.Run("missing token", func() {
		_, err := s.orchestrator.Authenticate(s.ctx, &account.AuthenticateInput{})
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("expired session", func() {
		s.mockSessions.EXPECT().
			Get(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("session not found"))

		_, err := s.orchestrator.Authenticate(s.ctx, &account.AuthenticateInput{Token: "sess_old"})
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("session of a deleted account is dropped", func() {
		s.mockSessions.EXPECT().
			Get(s.ctx, gomock.Any()).
			Return(&sessionrepo.GetOutput{Session: &sessionrepo.Session{Token: "sess_9", UserID: 9}}, nil)
		s.mockUsers.EXPECT().
			Get(s.ctx, userrepo.GetInput{ID: 9}).
			Return(nil, errors.NotFound("user not found"))
		s.mockSessions.EXPECT().
			Delete(s.ctx, sessionrepo.DeleteInput{Token: "sess_9"}).
			Return(&sessionrepo.DeleteOutput{}, nil)

		_, err := s.orchestrator.Authenticate(s.ctx, &account.AuthenticateInput{Token: "sess_9"})
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("store failures are internal", func() {
		s.mockSessions.EXPECT().
			Get(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("redis down"))

		_, err := s.orchestrator.Authenticate(s.ctx, &account.AuthenticateInput{Token: "sess_1"})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestSetDisplayPreference() {
	s.mockUsers.EXPECT().
		SetDisplayPreference(s.ctx, userrepo.SetDisplayPreferenceInput{ID: 2, Preference: entities.DisplayDark}).
		Return(&userrepo.SetDisplayPreferenceOutput{User: &entities.User{ID: 2, DisplayPreference: entities.DisplayDark}}, nil)

	out, err := s.orchestrator.SetDisplayPreference(s.ctx, &account.SetDisplayPreferenceInput{
		Actor:      s.player,
		Preference: "dark",
	})
	s.Require().NoError(err)
	s.Equal(entities.DisplayDark, out.User.DisplayPreference)

	_, err = s.orchestrator.SetDisplayPreference(s.ctx, &account.SetDisplayPreferenceInput{
		Actor:      s.player,
		Preference: "sepia",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListUsers() {
	s.Run("admin sees every account", func() {
		users := []*entities.User{{ID: 2, Username: "smaug"}, {ID: 1, Username: "thorin"}}
		s.mockUsers.EXPECT().
			List(s.ctx, userrepo.ListInput{}).
			Return(&userrepo.ListOutput{Users: users}, nil)

		out, err := s.orchestrator.ListUsers(s.ctx, &account.ListUsersInput{Actor: s.admin})
		s.Require().NoError(err)
		s.Equal(users, out.Users)
	})

	s.Run("non-admin is denied", func() {
		_, err := s.orchestrator.ListUsers(s.ctx, &account.ListUsersInput{Actor: s.player})
		s.True(errors.IsPermissionDenied(err))
	})
}

func (s *OrchestratorTestSuite) TestSetAdmin() {
	s.Run("promotes another account", func() {
		s.mockUsers.EXPECT().
			SetAdmin(s.ctx, userrepo.SetAdminInput{ID: 2, IsAdmin: true}).
			Return(&userrepo.SetAdminOutput{User: &entities.User{ID: 2, IsAdmin: true}}, nil)

		out, err := s.orchestrator.SetAdmin(s.ctx, &account.SetAdminInput{Actor: s.admin, UserID: 2, IsAdmin: true})
		s.Require().NoError(err)
		s.True(out.User.IsAdmin)
	})

	s.Run("admin cannot demote themselves", func() {
		_, err := s.orchestrator.SetAdmin(s.ctx, &account.SetAdminInput{Actor: s.admin, UserID: 1, IsAdmin: false})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("non-admin is denied", func() {
		_, err := s.orchestrator.SetAdmin(s.ctx, &account.SetAdminInput{Actor: s.player, UserID: 2, IsAdmin: true})
		s.True(errors.IsPermissionDenied(err))
	})

	s.Run("unknown account", func() {
		s.mockUsers.EXPECT().
			SetAdmin(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("user not found"))

		_, err := s.orchestrator.SetAdmin(s.ctx, &account.SetAdminInput{Actor: s.admin, UserID: 42, IsAdmin: true})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteUser() {
	s.Run("deletes and revokes sessions", func() {
		gomock.InOrder(
			s.mockUsers.EXPECT().
				Delete(s.ctx, userrepo.DeleteInput{ID: 2}).
				Return(&userrepo.DeleteOutput{}, nil),
			s.mockSessions.EXPECT().
				DeleteByUser(s.ctx, sessionrepo.DeleteByUserInput{UserID: 2}).
				Return(&sessionrepo.DeleteByUserOutput{Revoked: 3}, nil),
		)

		out, err := s.orchestrator.DeleteUser(s.ctx, &account.DeleteUserInput{Actor: s.admin, UserID: 2})
		s.Require().NoError(err)
		s.Equal(3, out.RevokedSessions)
	})

	s.Run("revocation failure does not fail the deletion", func() {
		s.mockUsers.EXPECT().
			Delete(s.ctx, gomock.Any()).
			Return(&userrepo.DeleteOutput{}, nil)
		s.mockSessions.EXPECT().
			DeleteByUser(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("redis down"))

		out, err := s.orchestrator.DeleteUser(s.ctx, &account.DeleteUserInput{Actor: s.admin, UserID: 2})
		s.Require().NoError(err)
		s.Zero(out.RevokedSessions)
	})

	s.Run("admin cannot delete themselves", func() {
		_, err := s.orchestrator.DeleteUser(s.ctx, &account.DeleteUserInput{Actor: s.admin, UserID: 1})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("non-admin is denied", func() {
		_, err := s.orchestrator.DeleteUser(s.ctx, &account.DeleteUserInput{Actor: s.player, UserID: 1})
		s.True(errors.IsPermissionDenied(err))
	})

	s.Run("missing account", func() {
		s.mockUsers.EXPECT().
			Delete(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("user not found"))

		_, err := s.orchestrator.DeleteUser(s.ctx, &account.DeleteUserInput{Actor: s.admin, UserID: 42})
		s.True(errors.IsNotFound(err))
	})
}
