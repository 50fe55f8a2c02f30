package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
	"github.com/KirkDiggler/rpg-sheets/internal/services/attachment"
	attachmentmock "github.com/KirkDiggler/rpg-sheets/internal/services/attachment/mock"
)

type AttachmentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAttachments *attachmentmock.MockService
	handler         *v1alpha1.AttachmentHandler

	actor entities.Actor
	ctx   context.Context
}

func TestAttachmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentHandlerTestSuite))
}

func (s *AttachmentHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAttachments = attachmentmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewAttachmentHandler(&v1alpha1.AttachmentHandlerConfig{
		AttachmentService: s.mockAttachments,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.actor = entities.Actor{UserID: 3}
	s.ctx = v1alpha1.ContextWithSession(context.Background(), s.actor, "sess_player")
}

func (s *AttachmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AttachmentHandlerTestSuite) TestCreateItem_MapsFields() {
	mods := []entities.ModifierInput{{Stat: "ac", Value: "2"}}

	s.mockAttachments.EXPECT().
		CreateItem(s.ctx, &attachment.CreateItemInput{
			Actor:       s.actor,
			CharacterID: 10,
			Fields: attachment.ItemFields{
				Name:      "Shield",
				Location:  "Left arm",
				Quantity:  "1",
				Modifiers: mods,
			},
			Equipped: true,
		}).
		Return(&attachment.CreateItemOutput{Item: &entities.InventoryItem{
			AttachmentBase: entities.AttachmentBase{ID: 5, CharacterID: 10, Name: "Shield"},
			Equipped:       true,
		}}, nil)

	resp, err := s.handler.CreateItem(s.ctx, &v1alpha1.ItemRequest{
		CharacterID: 10,
		Name:        "Shield",
		Location:    "Left arm",
		Quantity:    "1",
		Equipped:    true,
		Modifiers:   mods,
	})
	s.Require().NoError(err)
	s.Equal(int64(5), resp.Item.ID)
	s.True(resp.Item.Equipped)
}

func (s *AttachmentHandlerTestSuite) TestGetItem_NotFound() {
	s.mockAttachments.EXPECT().
		GetItem(s.ctx, &attachment.GetItemInput{Actor: s.actor, CharacterID: 10, ItemID: 5}).
		Return(nil, errors.NotFound("item not found"))

	_, err := s.handler.GetItem(s.ctx, &v1alpha1.AttachmentRef{CharacterID: 10, ID: 5})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *AttachmentHandlerTestSuite) TestToggleEquipped() {
	s.mockAttachments.EXPECT().
		ToggleEquipped(s.ctx, &attachment.ToggleEquippedInput{Actor: s.actor, CharacterID: 10, ItemID: 5}).
		Return(&attachment.ToggleEquippedOutput{Equipped: false}, nil)

	resp, err := s.handler.ToggleEquipped(s.ctx, &v1alpha1.AttachmentRef{CharacterID: 10, ID: 5})
	s.Require().NoError(err)
	s.False(resp.Equipped)
}

func (s *AttachmentHandlerTestSuite) TestUpdateFeature_UsesFeatureID() {
	s.mockAttachments.EXPECT().
		UpdateFeature(s.ctx, &attachment.UpdateFeatureInput{
			Actor:       s.actor,
			CharacterID: 10,
			FeatureID:   8,
			Fields:      attachment.FeatureFields{Name: "Darkvision", Source: "Race"},
		}).
		Return(&attachment.UpdateFeatureOutput{Feature: &entities.Feature{
			AttachmentBase: entities.AttachmentBase{ID: 8, Name: "Darkvision"},
			Source:         "Race",
		}}, nil)

	resp, err := s.handler.UpdateFeature(s.ctx, &v1alpha1.FeatureRequest{
		CharacterID: 10,
		FeatureID:   8,
		Name:        "Darkvision",
		Source:      "Race",
	})
	s.Require().NoError(err)
	s.Equal("Race", resp.Feature.Source)
}

func (s *AttachmentHandlerTestSuite) TestCreateSpell_PassesRawLevel() {
	s.mockAttachments.EXPECT().
		CreateSpell(s.ctx, &attachment.CreateSpellInput{
			Actor:       s.actor,
			CharacterID: 10,
			Fields:      attachment.SpellFields{Name: "Wish", Level: "15"},
		}).
		Return(&attachment.CreateSpellOutput{Spell: &entities.Spell{
			AttachmentBase: entities.AttachmentBase{ID: 2, Name: "Wish"},
			Level:          9,
		}}, nil)

	resp, err := s.handler.CreateSpell(s.ctx, &v1alpha1.SpellRequest{CharacterID: 10, Name: "Wish", Level: "15"})
	s.Require().NoError(err)
	s.Equal(9, resp.Spell.Level)
}

func (s *AttachmentHandlerTestSuite) TestDeleteSpell() {
	s.mockAttachments.EXPECT().
		DeleteSpell(s.ctx, &attachment.DeleteSpellInput{Actor: s.actor, CharacterID: 10, SpellID: 2}).
		Return(&attachment.DeleteSpellOutput{}, nil)

	_, err := s.handler.DeleteSpell(s.ctx, &v1alpha1.AttachmentRef{CharacterID: 10, ID: 2})
	s.NoError(err)
}

func (s *AttachmentHandlerTestSuite) TestToggleModifier_ConvertsKind() {
	s.mockAttachments.EXPECT().
		ToggleModifier(s.ctx, &attachment.ToggleModifierInput{
			Actor:       s.actor,
			CharacterID: 10,
			Kind:        entities.KindFeature,
			ModifierID:  12,
		}).
		Return(&attachment.ToggleModifierOutput{Enabled: false}, nil)

	resp, err := s.handler.ToggleModifier(s.ctx, &v1alpha1.ToggleModifierRequest{
		CharacterID: 10,
		Kind:        "feature",
		ModifierID:  12,
	})
	s.Require().NoError(err)
	s.False(resp.Enabled)
}

func (s *AttachmentHandlerTestSuite) TestWithoutSession() {
	_, err := s.handler.CreateFeature(context.Background(), &v1alpha1.FeatureRequest{CharacterID: 10, Name: "x"})
	s.Equal(codes.Unauthenticated, status.Code(err))
}
