package currency_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/currency"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *database.DB
	repo  currency.Repository
	scope ownership.Scope
	other ownership.Scope
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.CreateTestDB(s.T())

	repo, err := currency.NewSQLite(&currency.Config{DB: s.db})
	s.Require().NoError(err)
	s.repo = repo

	ownerID := testutils.SeedUser(s.T(), s.db, testutils.TestUsername)
	otherID := testutils.SeedUser(s.T(), s.db, testutils.TestOtherUsername)
	s.scope = ownership.Scope{
		UserID:      ownerID,
		CharacterID: testutils.SeedCharacter(s.T(), s.db, ownerID, testutils.TestCharacterName),
	}
	s.other = ownership.Scope{
		UserID:      otherID,
		CharacterID: testutils.SeedCharacter(s.T(), s.db, otherID, "Smaug"),
	}
}

func (s *SQLiteRepositoryTestSuite) create(name, abbr string) *entities.Currency {
	out, err := s.repo.Create(s.ctx, currency.CreateInput{Scope: s.scope, Name: name, Abbreviation: abbr})
	s.Require().NoError(err)
	return out.Currency
}

func (s *SQLiteRepositoryTestSuite) TestCreate() {
	cur := s.create("Platinum", "pp")
	s.NotZero(cur.ID)
	s.Zero(cur.Amount)
	s.Equal("pp", cur.Abbreviation)

	_, err := s.repo.Create(s.ctx, currency.CreateInput{Scope: s.scope, Name: ""})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, currency.CreateInput{
		Scope: ownership.Scope{UserID: s.other.UserID, CharacterID: s.scope.CharacterID},
		Name:  "Stolen",
	})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestList() {
	s.create("Gold", "gp")
	s.create("Silver", "sp")

	out, err := s.repo.List(s.ctx, currency.ListInput{Scope: s.scope})
	s.Require().NoError(err)
	s.Require().Len(out.Currencies, 2)
	s.Equal("Gold", out.Currencies[0].Name)
	s.Equal("Silver", out.Currencies[1].Name)
}

func (s *SQLiteRepositoryTestSuite) TestAdjustClampsAtZero() {
	cur := s.create("Gold", "gp")

	out, err := s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID, Delta: 5})
	s.Require().NoError(err)
	s.Equal(int64(5), out.Amount)

	out, err = s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID, Delta: -15})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Amount)

	out, err = s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID, Delta: 1_000_000})
	s.Require().NoError(err)
	s.Equal(int64(1_000_000), out.Amount)

	_, err = s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.other, ID: cur.ID, Delta: 1})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID + 99, Delta: 1})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestAdjustSaturatesLargeDeltas() {
	cur := s.create("Gold", "gp")

	out, err := s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID, Delta: math.MaxInt64 - 1})
	s.Require().NoError(err)
	s.Equal(int64(math.MaxInt64-1), out.Amount)

	out, err = s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID, Delta: 10})
	s.Require().NoError(err)
	s.Equal(int64(math.MaxInt64), out.Amount)

	list, err := s.repo.List(s.ctx, currency.ListInput{Scope: s.scope})
	s.Require().NoError(err)
	s.Require().Len(list.Currencies, 1)
	s.Equal(int64(math.MaxInt64), list.Currencies[0].Amount)

	out, err = s.repo.Adjust(s.ctx, currency.AdjustInput{Scope: s.scope, ID: cur.ID, Delta: math.MinInt64})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Amount)
}

func (s *SQLiteRepositoryTestSuite) TestRename() {
	cur := s.create("Gold", "gp")

	out, err := s.repo.Rename(s.ctx, currency.RenameInput{
		Scope: s.scope, ID: cur.ID, Name: "Crowns", Abbreviation: "cr",
	})
	s.Require().NoError(err)
	s.Equal("Crowns", out.Currency.Name)
	s.Equal("cr", out.Currency.Abbreviation)

	_, err = s.repo.Rename(s.ctx, currency.RenameInput{Scope: s.scope, ID: cur.ID, Name: " "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestDelete() {
	cur := s.create("Gold", "gp")

	_, err := s.repo.Delete(s.ctx, currency.DeleteInput{Scope: s.other, ID: cur.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, currency.DeleteInput{Scope: s.scope, ID: cur.ID})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, currency.ListInput{Scope: s.scope})
	s.Require().NoError(err)
	s.Empty(out.Currencies)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
