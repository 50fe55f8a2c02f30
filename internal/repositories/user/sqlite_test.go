package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/user"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *database.DB
	clock *clock.Fixed
	repo  user.Repository
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.CreateTestDB(s.T())
	s.clock = &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := user.NewSQLite(&user.Config{DB: s.db, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) create(username string) *entities.User {
	out, err := s.repo.Create(s.ctx, user.CreateInput{Username: username, PasswordHash: "hash"})
	s.Require().NoError(err)
	return out.User
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteValidatesConfig() {
	_, err := user.NewSQLite(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = user.NewSQLite(&user.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestCreate() {
	s.Run("first account is admin", func() {
		u := s.create("bilbo")
		s.NotZero(u.ID)
		s.True(u.IsAdmin)
		s.Equal(entities.DisplayLight, u.DisplayPreference)
		s.Equal(s.clock.At, u.CreatedAt)
	})

	s.Run("later accounts are not", func() {
		u := s.create("frodo")
		s.False(u.IsAdmin)
	})

	s.Run("duplicate username", func() {
		_, err := s.repo.Create(s.ctx, user.CreateInput{Username: "bilbo", PasswordHash: "other"})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("missing fields", func() {
		_, err := s.repo.Create(s.ctx, user.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestGet() {
	created := s.create("bilbo")

	out, err := s.repo.Get(s.ctx, user.GetInput{ID: created.ID})
	s.Require().NoError(err)
	s.Equal(created, out.User)

	byName, err := s.repo.GetByUsername(s.ctx, user.GetByUsernameInput{Username: "bilbo"})
	s.Require().NoError(err)
	s.Equal(created, byName.User)

	_, err = s.repo.Get(s.ctx, user.GetInput{ID: created.ID + 100})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetByUsername(s.ctx, user.GetByUsernameInput{Username: "gollum"})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestListOrdersByUsername() {
	s.create("samwise")
	s.create("bilbo")
	s.create("merry")

	out, err := s.repo.List(s.ctx, user.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Users, 3)
	s.Equal("bilbo", out.Users[0].Username)
	s.Equal("merry", out.Users[1].Username)
	s.Equal("samwise", out.Users[2].Username)
}

func (s *SQLiteRepositoryTestSuite) TestSetAdmin() {
	s.create("bilbo")
	frodo := s.create("frodo")

	out, err := s.repo.SetAdmin(s.ctx, user.SetAdminInput{ID: frodo.ID, IsAdmin: true})
	s.Require().NoError(err)
	s.True(out.User.IsAdmin)

	_, err = s.repo.SetAdmin(s.ctx, user.SetAdminInput{ID: 9999, IsAdmin: true})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestSetDisplayPreference() {
	u := s.create("bilbo")

	out, err := s.repo.SetDisplayPreference(s.ctx, user.SetDisplayPreferenceInput{
		ID:         u.ID,
		Preference: entities.DisplayDark,
	})
	s.Require().NoError(err)
	s.Equal(entities.DisplayDark, out.User.DisplayPreference)

	_, err = s.repo.SetDisplayPreference(s.ctx, user.SetDisplayPreferenceInput{
		ID:         u.ID,
		Preference: "sepia",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestDeleteCascadesToCharacters() {
	u := s.create("bilbo")
	charID := testutils.SeedCharacter(s.T(), s.db, u.ID, "Bilbo")
	testutils.SeedItem(s.T(), s.db, charID, "Sting", true)

	_, err := s.repo.Delete(s.ctx, user.DeleteInput{ID: u.ID})
	s.Require().NoError(err)

	var remaining int
	s.Require().NoError(s.db.QueryRowContext(s.ctx,
		`SELECT (SELECT COUNT(*) FROM characters) + (SELECT COUNT(*) FROM inventory_items)`).Scan(&remaining))
	s.Zero(remaining)

	_, err = s.repo.Delete(s.ctx, user.DeleteInput{ID: u.ID})
	s.True(errors.IsNotFound(err))
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
