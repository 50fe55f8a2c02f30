package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/attachment"
)

// AttachmentHandlerConfig holds dependencies for the attachment handler
type AttachmentHandlerConfig struct {
	AttachmentService attachment.Service
}

// Validate ensures all required dependencies are present
func (c *AttachmentHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.AttachmentService == nil {
		return errors.InvalidArgument("attachment service is required")
	}
	return nil
}

// AttachmentHandler implements AttachmentServiceServer
type AttachmentHandler struct {
	attachmentService attachment.Service
}

var _ AttachmentServiceServer = (*AttachmentHandler)(nil)

// NewAttachmentHandler creates a new attachment handler with the given configuration
func NewAttachmentHandler(cfg *AttachmentHandlerConfig) (*AttachmentHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &AttachmentHandler{
		attachmentService: cfg.AttachmentService,
	}, nil
}

func itemFields(req *ItemRequest) attachment.ItemFields {
	return attachment.ItemFields{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Quantity:    req.Quantity,
		Modifiers:   req.Modifiers,
	}
}

func featureFields(req *FeatureRequest) attachment.FeatureFields {
	return attachment.FeatureFields{
		Name:        req.Name,
		Description: req.Description,
		Source:      req.Source,
		Modifiers:   req.Modifiers,
	}
}

func spellFields(req *SpellRequest) attachment.SpellFields {
	return attachment.SpellFields{
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Modifiers:   req.Modifiers,
	}
}

// CreateItem adds an inventory item
func (h *AttachmentHandler) CreateItem(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.CreateItem(ctx, &attachment.CreateItemInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		Fields:      itemFields(req),
		Equipped:    req.Equipped,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ItemResponse{Item: out.Item}, nil
}

// GetItem reads an item with its modifiers
func (h *AttachmentHandler) GetItem(ctx context.Context, req *AttachmentRef) (*ItemResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.GetItem(ctx, &attachment.GetItemInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		ItemID:      req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ItemResponse{Item: out.Item}, nil
}

// UpdateItem overwrites an item and replaces its modifiers
func (h *AttachmentHandler) UpdateItem(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.UpdateItem(ctx, &attachment.UpdateItemInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		ItemID:      req.ItemID,
		Fields:      itemFields(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ItemResponse{Item: out.Item}, nil
}

// DeleteItem removes an item
func (h *AttachmentHandler) DeleteItem(ctx context.Context, req *AttachmentRef) (*DeleteAttachmentResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, err = h.attachmentService.DeleteItem(ctx, &attachment.DeleteItemInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		ItemID:      req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteAttachmentResponse{}, nil
}

// ToggleEquipped flips an item's equipped flag
func (h *AttachmentHandler) ToggleEquipped(ctx context.Context, req *AttachmentRef) (*ToggleEquippedResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.ToggleEquipped(ctx, &attachment.ToggleEquippedInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		ItemID:      req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ToggleEquippedResponse{Equipped: out.Equipped}, nil
}

// CreateFeature adds a feature
func (h *AttachmentHandler) CreateFeature(ctx context.Context, req *FeatureRequest) (*FeatureResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.CreateFeature(ctx, &attachment.CreateFeatureInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		Fields:      featureFields(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FeatureResponse{Feature: out.Feature}, nil
}

// GetFeature reads a feature with its modifiers
func (h *AttachmentHandler) GetFeature(ctx context.Context, req *AttachmentRef) (*FeatureResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.GetFeature(ctx, &attachment.GetFeatureInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		FeatureID:   req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FeatureResponse{Feature: out.Feature}, nil
}

// UpdateFeature overwrites a feature and replaces its modifiers
func (h *AttachmentHandler) UpdateFeature(ctx context.Context, req *FeatureRequest) (*FeatureResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.UpdateFeature(ctx, &attachment.UpdateFeatureInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		FeatureID:   req.FeatureID,
		Fields:      featureFields(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FeatureResponse{Feature: out.Feature}, nil
}

// DeleteFeature removes a feature
func (h *AttachmentHandler) DeleteFeature(ctx context.Context, req *AttachmentRef) (*DeleteAttachmentResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, err = h.attachmentService.DeleteFeature(ctx, &attachment.DeleteFeatureInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		FeatureID:   req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteAttachmentResponse{}, nil
}

// CreateSpell adds a spell
func (h *AttachmentHandler) CreateSpell(ctx context.Context, req *SpellRequest) (*SpellResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.CreateSpell(ctx, &attachment.CreateSpellInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		Fields:      spellFields(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SpellResponse{Spell: out.Spell}, nil
}

// GetSpell reads a spell with its modifiers
func (h *AttachmentHandler) GetSpell(ctx context.Context, req *AttachmentRef) (*SpellResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.GetSpell(ctx, &attachment.GetSpellInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		SpellID:     req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SpellResponse{Spell: out.Spell}, nil
}

// UpdateSpell overwrites a spell and replaces its modifiers
func (h *AttachmentHandler) UpdateSpell(ctx context.Context, req *SpellRequest) (*SpellResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.UpdateSpell(ctx, &attachment.UpdateSpellInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		SpellID:     req.SpellID,
		Fields:      spellFields(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SpellResponse{Spell: out.Spell}, nil
}

// DeleteSpell removes a spell
func (h *AttachmentHandler) DeleteSpell(ctx context.Context, req *AttachmentRef) (*DeleteAttachmentResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, err = h.attachmentService.DeleteSpell(ctx, &attachment.DeleteSpellInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		SpellID:     req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteAttachmentResponse{}, nil
}

// ToggleModifier flips one modifier of an item, feature or spell
func (h *AttachmentHandler) ToggleModifier(
	ctx context.Context,
	req *ToggleModifierRequest,
) (*ToggleModifierResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.attachmentService.ToggleModifier(ctx, &attachment.ToggleModifierInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		Kind:        entities.AttachmentKind(req.Kind),
		ModifierID:  req.ModifierID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ToggleModifierResponse{Enabled: out.Enabled}, nil
}
