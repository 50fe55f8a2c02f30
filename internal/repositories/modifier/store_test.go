package modifier_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/modifier"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *database.DB
	items       *modifier.Store
	features    *modifier.Store
	characterID int64
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.CreateTestDB(s.T())

	var err error
	s.items, err = modifier.NewStore(entities.KindItem)
	s.Require().NoError(err)
	s.features, err = modifier.NewStore(entities.KindFeature)
	s.Require().NoError(err)

	userID := testutils.SeedUser(s.T(), s.db, testutils.TestUsername)
	s.characterID = testutils.SeedCharacter(s.T(), s.db, userID, testutils.TestCharacterName)
}

func (s *StoreTestSuite) TestNewStoreUnknownKind() {
	_, err := modifier.NewStore("potion")
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestInsertAndList() {
	itemID := testutils.SeedItem(s.T(), s.db, s.characterID, "Shield", true)

	stored, err := s.items.Insert(s.ctx, s.db, itemID, []entities.StatModifier{
		{Stat: "ac", Value: 2, Enabled: true},
		{Stat: "dex_save", Value: -1, Enabled: false},
	})
	s.Require().NoError(err)
	s.Require().Len(stored, 2)
	s.NotZero(stored[0].ID)
	s.Equal(itemID, stored[1].AttachmentID)

	listed, err := s.items.List(s.ctx, s.db, itemID)
	s.Require().NoError(err)
	s.Equal(stored, listed)
}

func (s *StoreTestSuite) TestReplace() {
	itemID := testutils.SeedItem(s.T(), s.db, s.characterID, "Ring", true)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, itemID, "ac", 1, true)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, itemID, "speed", 5, true)

	s.Run("with a new set", func() {
		stored, err := s.items.Replace(s.ctx, s.db, itemID, []entities.StatModifier{
			{Stat: "cha_score", Value: 2, Enabled: true},
		})
		s.Require().NoError(err)
		s.Len(stored, 1)

		listed, err := s.items.List(s.ctx, s.db, itemID)
		s.Require().NoError(err)
		s.Require().Len(listed, 1)
		s.Equal("cha_score", listed[0].Stat)
	})

	s.Run("with nothing strips every row", func() {
		_, err := s.items.Replace(s.ctx, s.db, itemID, nil)
		s.Require().NoError(err)

		listed, err := s.items.List(s.ctx, s.db, itemID)
		s.Require().NoError(err)
		s.Empty(listed)
	})
}

func (s *StoreTestSuite) TestToggle() {
	itemID := testutils.SeedItem(s.T(), s.db, s.characterID, "Cloak", true)
	modID := testutils.SeedModifier(s.T(), s.db, entities.KindItem, itemID, "stealth", 1, true)

	enabled, err := s.items.Toggle(s.ctx, s.db, modID)
	s.Require().NoError(err)
	s.False(enabled)

	enabled, err = s.items.Toggle(s.ctx, s.db, modID)
	s.Require().NoError(err)
	s.True(enabled)

	_, err = s.items.Toggle(s.ctx, s.db, 9999)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestSum() {
	equipped := testutils.SeedItem(s.T(), s.db, s.characterID, "Plate", true)
	stowed := testutils.SeedItem(s.T(), s.db, s.characterID, "Spare Shield", false)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, equipped, "ac", 8, true)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, equipped, "stealth", -1, true)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, equipped, "speed", -10, false)
	testutils.SeedModifier(s.T(), s.db, entities.KindItem, stowed, "ac", 2, true)

	feature := testutils.SeedFeature(s.T(), s.db, s.characterID, "Defense")
	testutils.SeedModifier(s.T(), s.db, entities.KindFeature, feature, "ac", 1, true)

	itemBonuses, err := s.items.Sum(s.ctx, s.db, s.characterID)
	s.Require().NoError(err)
	if diff := cmp.Diff(entities.Bonuses{"ac": 8, "stealth": -1}, itemBonuses); diff != "" {
		s.Failf("item bonuses mismatch", "(-want +got):\n%s", diff)
	}

	featureBonuses, err := s.features.Sum(s.ctx, s.db, s.characterID)
	s.Require().NoError(err)
	s.Equal(entities.Bonuses{"ac": 1}, featureBonuses)
}

func (s *StoreTestSuite) TestListByCharacter() {
	first := testutils.SeedFeature(s.T(), s.db, s.characterID, "Alert")
	second := testutils.SeedFeature(s.T(), s.db, s.characterID, "Tough")
	testutils.SeedModifier(s.T(), s.db, entities.KindFeature, first, "initiative", 5, true)
	testutils.SeedModifier(s.T(), s.db, entities.KindFeature, second, "hp_max", 2, true)
	testutils.SeedModifier(s.T(), s.db, entities.KindFeature, second, "hp_max", 2, false)

	byFeature, err := s.features.ListByCharacter(s.ctx, s.db, s.characterID)
	s.Require().NoError(err)
	s.Len(byFeature[first], 1)
	s.Len(byFeature[second], 2)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
