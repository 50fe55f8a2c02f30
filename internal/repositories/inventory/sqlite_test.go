package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/inventory"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *database.DB
	repo  inventory.Repository
	scope ownership.Scope
	other ownership.Scope
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.CreateTestDB(s.T())

	repo, err := inventory.NewSQLite(&inventory.Config{DB: s.db})
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

func (s *SQLiteRepositoryTestSuite) create(name string, equipped bool, mods ...entities.StatModifier) *entities.InventoryItem {
	out, err := s.repo.Create(s.ctx, inventory.CreateInput{
		Scope: s.scope,
		Item: &entities.InventoryItem{
			AttachmentBase: entities.AttachmentBase{Name: name, Modifiers: mods},
			Equipped:       equipped,
		},
	})
	s.Require().NoError(err)
	return out.Item
}

func (s *SQLiteRepositoryTestSuite) TestCreate() {
	qty := 3
	out, err := s.repo.Create(s.ctx, inventory.CreateInput{
		Scope: s.scope,
		Item: &entities.InventoryItem{
			AttachmentBase: entities.AttachmentBase{
				Name:        "Shield",
				Description: "Heater shield",
				Modifiers: []entities.StatModifier{
					{Stat: "ac", Value: 2, Enabled: true},
					{Stat: "stealth", Value: -1, Enabled: false},
				},
			},
			Location: "back",
			Quantity: &qty,
		},
	})
	s.Require().NoError(err)

	item := out.Item
	s.NotZero(item.ID)
	s.Equal(s.scope.CharacterID, item.CharacterID)
	s.Equal("back", item.Location)
	s.Require().NotNil(item.Quantity)
	s.Equal(3, *item.Quantity)
	s.False(item.Equipped)
	s.Require().Len(item.Modifiers, 2)
	s.True(item.Modifiers[0].Enabled)
	s.False(item.Modifiers[1].Enabled)
}

func (s *SQLiteRepositoryTestSuite) TestCreateValidation() {
	s.Run("blank name", func() {
		_, err := s.repo.Create(s.ctx, inventory.CreateInput{
			Scope: s.scope,
			Item:  &entities.InventoryItem{AttachmentBase: entities.AttachmentBase{Name: "  "}},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("someone else's character", func() {
		_, err := s.repo.Create(s.ctx, inventory.CreateInput{
			Scope: ownership.Scope{UserID: s.other.UserID, CharacterID: s.scope.CharacterID},
			Item:  &entities.InventoryItem{AttachmentBase: entities.AttachmentBase{Name: "Loot"}},
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestCreateAssignsSortOrder() {
	first := s.create("Rope", false)
	second := s.create("Torch", false)
	s.Equal(0, first.SortOrder)
	s.Equal(1, second.SortOrder)
}

func (s *SQLiteRepositoryTestSuite) TestListOrdersEquippedFirst() {
	s.create("Backpack", false)
	s.create("Longsword", true)
	s.create("Apple", false)

	out, err := s.repo.List(s.ctx, inventory.ListInput{Scope: s.scope})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 3)
	s.Equal("Longsword", out.Items[0].Name)
	s.Equal("Backpack", out.Items[1].Name)
	s.Equal("Apple", out.Items[2].Name)
	for _, item := range out.Items {
		s.NotNil(item.Modifiers)
	}

	_, err = s.repo.List(s.ctx, inventory.ListInput{
		Scope: ownership.Scope{UserID: s.other.UserID, CharacterID: s.scope.CharacterID},
	})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestGet() {
	item := s.create("Lantern", false, entities.StatModifier{Stat: "perception", Value: 1, Enabled: true})

	out, err := s.repo.Get(s.ctx, inventory.GetInput{Scope: s.scope, ID: item.ID})
	s.Require().NoError(err)
	s.Equal(item, out.Item)

	_, foreign := s.repo.Get(s.ctx, inventory.GetInput{Scope: s.other, ID: item.ID})
	_, missing := s.repo.Get(s.ctx, inventory.GetInput{Scope: s.scope, ID: item.ID + 100})
	s.True(errors.IsNotFound(foreign))
	s.True(errors.IsNotFound(missing))
}

func (s *SQLiteRepositoryTestSuite) TestUpdateReplacesModifiers() {
	item := s.create("Ring", true,
		entities.StatModifier{Stat: "ac", Value: 1, Enabled: true},
		entities.StatModifier{Stat: "wis_save", Value: 1, Enabled: true},
	)

	s.Run("new set", func() {
		out, err := s.repo.Update(s.ctx, inventory.UpdateInput{
			Scope: s.scope,
			Item: &entities.InventoryItem{
				AttachmentBase: entities.AttachmentBase{
					ID:        item.ID,
					Name:      "Ring of Protection",
					Modifiers: []entities.StatModifier{{Stat: "ac", Value: 1, Enabled: true}},
				},
				Location: "finger",
			},
		})
		s.Require().NoError(err)
		s.Equal("Ring of Protection", out.Item.Name)
		s.Equal("finger", out.Item.Location)
		s.Nil(out.Item.Quantity)
		s.True(out.Item.Equipped)
		s.Len(out.Item.Modifiers, 1)
	})

	s.Run("no modifiers strips every bonus", func() {
		out, err := s.repo.Update(s.ctx, inventory.UpdateInput{
			Scope: s.scope,
			Item: &entities.InventoryItem{
				AttachmentBase: entities.AttachmentBase{ID: item.ID, Name: "Plain Ring"},
			},
		})
		s.Require().NoError(err)
		s.Empty(out.Item.Modifiers)

		var rows int
		s.Require().NoError(s.db.QueryRowContext(s.ctx,
			`SELECT COUNT(*) FROM item_properties WHERE item_id = ?`, item.ID).Scan(&rows))
		s.Zero(rows)

		bonuses, err := s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
		s.Require().NoError(err)
		s.Zero(bonuses.Get("ac"))
	})

	s.Run("other user", func() {
		_, err := s.repo.Update(s.ctx, inventory.UpdateInput{
			Scope: s.other,
			Item: &entities.InventoryItem{
				AttachmentBase: entities.AttachmentBase{ID: item.ID, Name: "Stolen"},
			},
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestDelete() {
	item := s.create("Potion", false, entities.StatModifier{Stat: "hp_max", Value: 2, Enabled: true})

	_, err := s.repo.Delete(s.ctx, inventory.DeleteInput{Scope: s.other, ID: item.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{Scope: s.scope, ID: item.ID})
	s.Require().NoError(err)

	var rows int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM item_properties`).Scan(&rows))
	s.Zero(rows)

	_, err = s.repo.Get(s.ctx, inventory.GetInput{Scope: s.scope, ID: item.ID})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestToggleEquipped() {
	item := s.create("Greatsword", false, entities.StatModifier{Stat: "athletics", Value: 1, Enabled: true})

	out, err := s.repo.ToggleEquipped(s.ctx, inventory.ToggleEquippedInput{Scope: s.scope, ID: item.ID})
	s.Require().NoError(err)
	s.True(out.Equipped)

	bonuses, err := s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Equal(1, bonuses.Get("athletics"))

	out, err = s.repo.ToggleEquipped(s.ctx, inventory.ToggleEquippedInput{Scope: s.scope, ID: item.ID})
	s.Require().NoError(err)
	s.False(out.Equipped)

	bonuses, err = s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Zero(bonuses.Get("athletics"))

	got, err := s.repo.Get(s.ctx, inventory.GetInput{Scope: s.scope, ID: item.ID})
	s.Require().NoError(err)
	s.True(got.Item.Modifiers[0].Enabled)

	_, err = s.repo.ToggleEquipped(s.ctx, inventory.ToggleEquippedInput{Scope: s.other, ID: item.ID})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestToggleModifier() {
	item := s.create("Amulet", true, entities.StatModifier{Stat: "con_save", Value: 2, Enabled: true})
	modID := item.Modifiers[0].ID

	out, err := s.repo.ToggleModifier(s.ctx, inventory.ToggleModifierInput{Scope: s.scope, ModifierID: modID})
	s.Require().NoError(err)
	s.False(out.Enabled)

	bonuses, err := s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Zero(bonuses.Get("con_save"))

	out, err = s.repo.ToggleModifier(s.ctx, inventory.ToggleModifierInput{Scope: s.scope, ModifierID: modID})
	s.Require().NoError(err)
	s.True(out.Enabled)

	bonuses, err = s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Equal(2, bonuses.Get("con_save"))

	_, err = s.repo.ToggleModifier(s.ctx, inventory.ToggleModifierInput{Scope: s.other, ModifierID: modID})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestSumBonusesIsPerCharacter() {
	s.create("Bracers", true, entities.StatModifier{Stat: "ac", Value: 2, Enabled: true})
	otherItem := testutils.SeedItem(s.T(), s.db, s.other.CharacterID, "Scales", true)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, otherItem, "ac", 10, true)

	bonuses, err := s.repo.SumBonuses(s.ctx, s.scope.CharacterID)
	s.Require().NoError(err)
	s.Equal(entities.Bonuses{"ac": 2}, bonuses)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
