package spell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/spell"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *database.DB
	repo  spell.Repository
	scope ownership.Scope
	other ownership.Scope
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.CreateTestDB(s.T())

	repo, err := spell.NewSQLite(&spell.Config{DB: s.db})
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

func (s *SQLiteRepositoryTestSuite) create(name string, level int, mods ...entities.StatModifier) *entities.Spell {
	out, err := s.repo.Create(s.ctx, spell.CreateInput{
		Scope: s.scope,
		Spell: &entities.Spell{
			AttachmentBase: entities.AttachmentBase{Name: name, Modifiers: mods},
			Level:          level,
		},
	})
	s.Require().NoError(err)
	return out.Spell
}

func (s *SQLiteRepositoryTestSuite) TestCreateClampsLevel() {
	s.Equal(9, s.create("Wish", 15).Level)
	s.Equal(0, s.create("Light", -3).Level)
	s.Equal(3, s.create("Fireball", 3).Level)
}

func (s *SQLiteRepositoryTestSuite) TestListOrdersByLevel() {
	s.create("Fireball", 3)
	s.create("Shield", 1)
	s.create("Mage Hand", 0)
	s.create("Magic Missile", 1)

	out, err := s.repo.List(s.ctx, spell.ListInput{Scope: s.scope})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 4)
	s.Equal("Mage Hand", out.Spells[0].Name)
	s.Equal("Shield", out.Spells[1].Name)
	s.Equal("Magic Missile", out.Spells[2].Name)
	s.Equal("Fireball", out.Spells[3].Name)

	_, err = s.repo.List(s.ctx, spell.ListInput{
		Scope: ownership.Scope{UserID: s.other.UserID, CharacterID: s.scope.CharacterID},
	})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestUpdate() {
	sp := s.create("Mage Armor", 1, entities.StatModifier{Stat: "ac", Value: 3, Enabled: true})

	out, err := s.repo.Update(s.ctx, spell.UpdateInput{
		Scope: s.scope,
		Spell: &entities.Spell{
			AttachmentBase: entities.AttachmentBase{
				ID:        sp.ID,
				Name:      "Mage Armor",
				Modifiers: []entities.StatModifier{{Stat: "ac", Value: 3, Enabled: false}},
			},
			Level: 42,
		},
	})
	s.Require().NoError(err)
	s.Equal(9, out.Spell.Level)
	s.Require().Len(out.Spell.Modifiers, 1)
	s.False(out.Spell.Modifiers[0].Enabled)

	bonuses, err := s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Zero(bonuses.Get("ac"))

	_, err = s.repo.Update(s.ctx, spell.UpdateInput{
		Scope: s.other,
		Spell: &entities.Spell{AttachmentBase: entities.AttachmentBase{ID: sp.ID, Name: "x"}},
	})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestToggleModifierGetAndDelete() {
	sp := s.create("Bless", 1, entities.StatModifier{Stat: "wis_save", Value: 1, Enabled: false})

	out, err := s.repo.ToggleModifier(s.ctx, spell.ToggleModifierInput{
		Scope:      s.scope,
		ModifierID: sp.Modifiers[0].ID,
	})
	s.Require().NoError(err)
	s.True(out.Enabled)

	got, err := s.repo.Get(s.ctx, spell.GetInput{Scope: s.scope, ID: sp.ID})
	s.Require().NoError(err)
	s.True(got.Spell.Modifiers[0].Enabled)

	bonuses, err := s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Equal(1, bonuses.Get("wis_save"))

	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{Scope: s.scope, ID: sp.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, spell.GetInput{Scope: s.scope, ID: sp.ID})
	s.True(errors.IsNotFound(err))
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
