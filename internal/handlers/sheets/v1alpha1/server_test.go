package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-sheets/internal/app"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

const bufSize = 1024 * 1024

// ServerTestSuite drives the full stack over an in-process connection:
// SQLite in memory, sessions in miniredis.
type ServerTestSuite struct {
	suite.Suite
	ctx  context.Context
	conn *grpc.ClientConn

	accounts    *v1alpha1.AccountServiceClient
	characters  *v1alpha1.CharacterServiceClient
	attachments *v1alpha1.AttachmentServiceClient
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()

	db := testutils.CreateTestDB(s.T())
	redisClient, _ := testutils.CreateTestRedisClient(s.T())

	services, err := app.New(&app.Config{
		DB:         db,
		Redis:      redisClient,
		SessionTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	s.Require().NoError(err)

	srv, err := services.NewGRPCServer()
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	go func() {
		_ = srv.Serve(lis)
	}()
	s.T().Cleanup(srv.Stop)

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = s.conn.Close() })

	s.accounts = v1alpha1.NewAccountServiceClient(s.conn)
	s.characters = v1alpha1.NewCharacterServiceClient(s.conn)
	s.attachments = v1alpha1.NewAttachmentServiceClient(s.conn)
}

// login registers username and returns a context carrying its session
func (s *ServerTestSuite) login(username string) context.Context {
	_, err := s.accounts.Register(s.ctx, &v1alpha1.RegisterRequest{
		Username:        username,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	s.Require().NoError(err)

	resp, err := s.accounts.Login(s.ctx, &v1alpha1.LoginRequest{Username: username, Password: "secret1"})
	s.Require().NoError(err)
	s.Require().NotEmpty(resp.Token)

	return v1alpha1.WithToken(s.ctx, resp.Token)
}

func (s *ServerTestSuite) TestHealth() {
	resp, err := grpc_health_v1.NewHealthClient(s.conn).Check(s.ctx, &grpc_health_v1.HealthCheckRequest{
		Service: v1alpha1.CharacterServiceName,
	})
	s.Require().NoError(err)
	s.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}

func (s *ServerTestSuite) TestPublicAndProtectedCalls() {
	options, err := s.characters.ListStatOptions(s.ctx, &v1alpha1.ListStatOptionsRequest{})
	s.Require().NoError(err)
	s.NotEmpty(options.Options)

	_, err = s.characters.ListCharacters(s.ctx, &v1alpha1.ListCharactersRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))

	_, err = s.characters.ListCharacters(v1alpha1.WithToken(s.ctx, "sess_forged"), &v1alpha1.ListCharactersRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *ServerTestSuite) TestFirstRegistrantIsAdmin() {
	first, err := s.accounts.Register(s.ctx, &v1alpha1.RegisterRequest{
		Username: "gm", Password: "secret1", ConfirmPassword: "secret1",
	})
	s.Require().NoError(err)
	s.True(first.User.IsAdmin)

	second, err := s.accounts.Register(s.ctx, &v1alpha1.RegisterRequest{
		Username: "player", Password: "secret1", ConfirmPassword: "secret1",
	})
	s.Require().NoError(err)
	s.False(second.User.IsAdmin)

	_, err = s.accounts.Register(s.ctx, &v1alpha1.RegisterRequest{
		Username: "gm", Password: "secret1", ConfirmPassword: "secret1",
	})
	s.Equal(codes.AlreadyExists, status.Code(err))
}

func (s *ServerTestSuite) TestBonusScenario() {
	ctx := s.login("gm")

	created, err := s.characters.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{})
	s.Require().NoError(err)
	s.Equal(entities.DefaultCharacterName, created.Character.Name)
	s.Len(created.Currencies, 3)
	characterID := created.Character.ID

	shield, err := s.attachments.CreateItem(ctx, &v1alpha1.ItemRequest{
		CharacterID: characterID,
		Name:        "Shield",
		Equipped:    true,
		Modifiers:   []entities.ModifierInput{{Stat: "ac", Value: "2"}},
	})
	s.Require().NoError(err)

	defense, err := s.attachments.CreateFeature(ctx, &v1alpha1.FeatureRequest{
		CharacterID: characterID,
		Name:        "Defense",
		Modifiers:   []entities.ModifierInput{{Stat: "ac", Value: "1"}},
	})
	s.Require().NoError(err)
	s.Require().Len(defense.Feature.Modifiers, 1)

	s.Equal(3, s.bonus(ctx, characterID, "ac"))

	toggled, err := s.attachments.ToggleEquipped(ctx, &v1alpha1.AttachmentRef{CharacterID: characterID, ID: shield.Item.ID})
	s.Require().NoError(err)
	s.False(toggled.Equipped)
	s.Equal(1, s.bonus(ctx, characterID, "ac"))

	disabled, err := s.attachments.ToggleModifier(ctx, &v1alpha1.ToggleModifierRequest{
		CharacterID: characterID,
		Kind:        string(entities.KindFeature),
		ModifierID:  defense.Feature.Modifiers[0].ID,
	})
	s.Require().NoError(err)
	s.False(disabled.Enabled)
	s.Equal(0, s.bonus(ctx, characterID, "ac"))

	sheet, err := s.characters.GetSheet(ctx, &v1alpha1.GetSheetRequest{CharacterID: characterID})
	s.Require().NoError(err)
	s.Len(sheet.Sheet.Items, 1)
	s.Len(sheet.Sheet.Features, 1)
	s.Equal(0, sheet.Sheet.Bonuses.Get("ac"))
}

func (s *ServerTestSuite) bonus(ctx context.Context, characterID int64, stat string) int {
	resp, err := s.characters.GetBonuses(ctx, &v1alpha1.GetBonusesRequest{CharacterID: characterID})
	s.Require().NoError(err)
	return resp.Bonuses.Get(stat)
}

func (s *ServerTestSuite) TestCurrencyClampsAtZero() {
	ctx := s.login("gm")

	created, err := s.characters.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{})
	s.Require().NoError(err)
	gold := created.Currencies[0]

	resp, err := s.characters.AdjustCurrency(ctx, &v1alpha1.AdjustCurrencyRequest{
		CharacterID: created.Character.ID,
		CurrencyID:  gold.ID,
		Delta:       25,
	})
	s.Require().NoError(err)
	s.Equal(int64(25), resp.Amount)

	resp, err = s.characters.AdjustCurrency(ctx, &v1alpha1.AdjustCurrencyRequest{
		CharacterID: created.Character.ID,
		CurrencyID:  gold.ID,
		Delta:       -100,
	})
	s.Require().NoError(err)
	s.Equal(int64(0), resp.Amount)
}

func (s *ServerTestSuite) TestStrangerSeesNotFound() {
	ownerCtx := s.login("gm")
	strangerCtx := s.login("player")

	created, err := s.characters.CreateCharacter(ownerCtx, &v1alpha1.CreateCharacterRequest{})
	s.Require().NoError(err)

	_, foreignErr := s.characters.GetSheet(strangerCtx, &v1alpha1.GetSheetRequest{CharacterID: created.Character.ID})
	_, missingErr := s.characters.GetSheet(strangerCtx, &v1alpha1.GetSheetRequest{CharacterID: created.Character.ID + 1000})

	s.Equal(codes.NotFound, status.Code(foreignErr))
	s.Equal(codes.NotFound, status.Code(missingErr))
	s.Equal(status.Convert(missingErr).Message(), status.Convert(foreignErr).Message())
}

func (s *ServerTestSuite) TestLogoutRevokesSession() {
	ctx := s.login("gm")

	_, err := s.accounts.WhoAmI(ctx, &v1alpha1.WhoAmIRequest{})
	s.Require().NoError(err)

	_, err = s.accounts.Logout(ctx, &v1alpha1.LogoutRequest{})
	s.Require().NoError(err)

	_, err = s.accounts.WhoAmI(ctx, &v1alpha1.WhoAmIRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))
}
