// Package attachment implements the attachment orchestrator. It turns raw
// form input into entities (dropping malformed modifier rows, clamping spell
// levels) and hands them to the collection repositories, which check
// ownership inside their own transactions.
package attachment

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	featurerepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/feature"
	inventoryrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/inventory"
	spellrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/spell"
	"github.com/KirkDiggler/rpg-sheets/internal/services/attachment"
)

// Config holds the dependencies for the attachment orchestrator
type Config struct {
	InventoryRepo inventoryrepo.Repository
	FeatureRepo   featurerepo.Repository
	SpellRepo     spellrepo.Repository
	Logger        *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.FeatureRepo == nil {
		vb.RequiredField("FeatureRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	return vb.Build()
}

// Orchestrator implements the attachment.Service interface
type Orchestrator struct {
	inventoryRepo inventoryrepo.Repository
	featureRepo   featurerepo.Repository
	spellRepo     spellrepo.Repository
	logger        *zap.Logger
}

// New creates a new attachment orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		featureRepo:   cfg.FeatureRepo,
		spellRepo:     cfg.SpellRepo,
		logger:        logger.Named("attachment"),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ attachment.Service = (*Orchestrator)(nil)

func scopeFor(actor entities.Actor, characterID int64) ownership.Scope {
	return ownership.Scope{UserID: actor.UserID, CharacterID: characterID}
}

func validateName(name string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	return vb.Build()
}

func validateID(field string, id int64) error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID(field, id, vb)
	return vb.Build()
}

func itemFrom(id, characterID int64, f attachment.ItemFields) *entities.InventoryItem {
	return &entities.InventoryItem{
		AttachmentBase: entities.AttachmentBase{
			ID:          id,
			CharacterID: characterID,
			Name:        f.Name,
			Description: f.Description,
			Modifiers:   entities.ParseModifiers(f.Modifiers),
		},
		Location: f.Location,
		Quantity: entities.ParseQuantity(f.Quantity),
	}
}

func featureFrom(id, characterID int64, f attachment.FeatureFields) *entities.Feature {
	return &entities.Feature{
		AttachmentBase: entities.AttachmentBase{
			ID:          id,
			CharacterID: characterID,
			Name:        f.Name,
			Description: f.Description,
			Modifiers:   entities.ParseModifiers(f.Modifiers),
		},
		Source: f.Source,
	}
}

func spellFrom(id, characterID int64, f attachment.SpellFields) *entities.Spell {
	return &entities.Spell{
		AttachmentBase: entities.AttachmentBase{
			ID:          id,
			CharacterID: characterID,
			Name:        f.Name,
			Description: f.Description,
			Modifiers:   entities.ParseModifiers(f.Modifiers),
		},
		Level: entities.ParseSpellLevel(f.Level),
	}
}

// Inventory

// CreateItem adds an item with its valid modifier rows
func (o *Orchestrator) CreateItem(ctx context.Context, input *attachment.CreateItemInput) (*attachment.CreateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Fields.Name); err != nil {
		return nil, err
	}

	item := itemFrom(0, input.CharacterID, input.Fields)
	item.Equipped = input.Equipped

	created, err := o.inventoryRepo.Create(ctx, inventoryrepo.CreateInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		Item:  item,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	o.logger.Debug("created item",
		zap.Int64("character_id", input.CharacterID),
		zap.Int64("item_id", created.Item.ID),
		zap.Int("modifiers", len(created.Item.Modifiers)),
		zap.Int("dropped_modifiers", len(input.Fields.Modifiers)-len(item.Modifiers)))

	return &attachment.CreateItemOutput{Item: created.Item}, nil
}

// GetItem reads one item with its modifiers
func (o *Orchestrator) GetItem(ctx context.Context, input *attachment.GetItemInput) (*attachment.GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID("item_id", input.ItemID); err != nil {
		return nil, err
	}

	got, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.ItemID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}

	return &attachment.GetItemOutput{Item: got.Item}, nil
}

// UpdateItem overwrites an item and replaces all of its modifiers
func (o *Orchestrator) UpdateItem(ctx context.Context, input *attachment.UpdateItemInput) (*attachment.UpdateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID("item_id", input.ItemID); err != nil {
		return nil, err
	}
	if err := validateName(input.Fields.Name); err != nil {
		return nil, err
	}

	updated, err := o.inventoryRepo.Update(ctx, inventoryrepo.UpdateInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		Item:  itemFrom(input.ItemID, input.CharacterID, input.Fields),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}

	return &attachment.UpdateItemOutput{Item: updated.Item}, nil
}

// DeleteItem removes an item and its modifiers
func (o *Orchestrator) DeleteItem(ctx context.Context, input *attachment.DeleteItemInput) (*attachment.DeleteItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.inventoryRepo.Delete(ctx, inventoryrepo.DeleteInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.ItemID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete item")
	}

	return &attachment.DeleteItemOutput{}, nil
}

// ToggleEquipped flips an item's equipped flag
func (o *Orchestrator) ToggleEquipped(ctx context.Context, input *attachment.ToggleEquippedInput) (*attachment.ToggleEquippedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	toggled, err := o.inventoryRepo.ToggleEquipped(ctx, inventoryrepo.ToggleEquippedInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.ItemID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle equipped")
	}

	return &attachment.ToggleEquippedOutput{Equipped: toggled.Equipped}, nil
}

// Features

// CreateFeature adds a feature with its valid modifier rows
func (o *Orchestrator) CreateFeature(ctx context.Context, input *attachment.CreateFeatureInput) (*attachment.CreateFeatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Fields.Name); err != nil {
		return nil, err
	}

	created, err := o.featureRepo.Create(ctx, featurerepo.CreateInput{
		Scope:   scopeFor(input.Actor, input.CharacterID),
		Feature: featureFrom(0, input.CharacterID, input.Fields),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create feature")
	}

	return &attachment.CreateFeatureOutput{Feature: created.Feature}, nil
}

// GetFeature reads one feature with its modifiers
func (o *Orchestrator) GetFeature(ctx context.Context, input *attachment.GetFeatureInput) (*attachment.GetFeatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID("feature_id", input.FeatureID); err != nil {
		return nil, err
	}

	got, err := o.featureRepo.Get(ctx, featurerepo.GetInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.FeatureID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get feature")
	}

	return &attachment.GetFeatureOutput{Feature: got.Feature}, nil
}

// UpdateFeature overwrites a feature and replaces all of its modifiers
func (o *Orchestrator) UpdateFeature(ctx context.Context, input *attachment.UpdateFeatureInput) (*attachment.UpdateFeatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID("feature_id", input.FeatureID); err != nil {
		return nil, err
	}
	if err := validateName(input.Fields.Name); err != nil {
		return nil, err
	}

	updated, err := o.featureRepo.Update(ctx, featurerepo.UpdateInput{
		Scope:   scopeFor(input.Actor, input.CharacterID),
		Feature: featureFrom(input.FeatureID, input.CharacterID, input.Fields),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update feature")
	}

	return &attachment.UpdateFeatureOutput{Feature: updated.Feature}, nil
}

// DeleteFeature removes a feature and its modifiers
func (o *Orchestrator) DeleteFeature(ctx context.Context, input *attachment.DeleteFeatureInput) (*attachment.DeleteFeatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.featureRepo.Delete(ctx, featurerepo.DeleteInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.FeatureID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete feature")
	}

	return &attachment.DeleteFeatureOutput{}, nil
}

// Spells

// CreateSpell adds a spell with its valid modifier rows
func (o *Orchestrator) CreateSpell(ctx context.Context, input *attachment.CreateSpellInput) (*attachment.CreateSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Fields.Name); err != nil {
		return nil, err
	}

	created, err := o.spellRepo.Create(ctx, spellrepo.CreateInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		Spell: spellFrom(0, input.CharacterID, input.Fields),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell")
	}

	return &attachment.CreateSpellOutput{Spell: created.Spell}, nil
}

// GetSpell reads one spell with its modifiers
func (o *Orchestrator) GetSpell(ctx context.Context, input *attachment.GetSpellInput) (*attachment.GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID("spell_id", input.SpellID); err != nil {
		return nil, err
	}

	got, err := o.spellRepo.Get(ctx, spellrepo.GetInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.SpellID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get spell")
	}

	return &attachment.GetSpellOutput{Spell: got.Spell}, nil
}

// UpdateSpell overwrites a spell and replaces all of its modifiers
func (o *Orchestrator) UpdateSpell(ctx context.Context, input *attachment.UpdateSpellInput) (*attachment.UpdateSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID("spell_id", input.SpellID); err != nil {
		return nil, err
	}
	if err := validateName(input.Fields.Name); err != nil {
		return nil, err
	}

	updated, err := o.spellRepo.Update(ctx, spellrepo.UpdateInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		Spell: spellFrom(input.SpellID, input.CharacterID, input.Fields),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update spell")
	}

	return &attachment.UpdateSpellOutput{Spell: updated.Spell}, nil
}

// DeleteSpell removes a spell and its modifiers
func (o *Orchestrator) DeleteSpell(ctx context.Context, input *attachment.DeleteSpellInput) (*attachment.DeleteSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.spellRepo.Delete(ctx, spellrepo.DeleteInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.SpellID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete spell")
	}

	return &attachment.DeleteSpellOutput{}, nil
}

// Modifiers

// ToggleModifier flips one modifier of the given kind
func (o *Orchestrator) ToggleModifier(ctx context.Context, input *attachment.ToggleModifierInput) (*attachment.ToggleModifierOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	scope := scopeFor(input.Actor, input.CharacterID)

	var (
		enabled bool
		err     error
	)
	switch input.Kind {
	case entities.KindItem:
		var out *inventoryrepo.ToggleModifierOutput
		out, err = o.inventoryRepo.ToggleModifier(ctx, inventoryrepo.ToggleModifierInput{Scope: scope, ModifierID: input.ModifierID})
		if out != nil {
			enabled = out.Enabled
		}
	case entities.KindFeature:
		var out *featurerepo.ToggleModifierOutput
		out, err = o.featureRepo.ToggleModifier(ctx, featurerepo.ToggleModifierInput{Scope: scope, ModifierID: input.ModifierID})
		if out != nil {
			enabled = out.Enabled
		}
	case entities.KindSpell:
		var out *spellrepo.ToggleModifierOutput
		out, err = o.spellRepo.ToggleModifier(ctx, spellrepo.ToggleModifierInput{Scope: scope, ModifierID: input.ModifierID})
		if out != nil {
			enabled = out.Enabled
		}
	default:
		return nil, errors.InvalidArgumentf("unknown attachment kind %q", input.Kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to toggle %s modifier", input.Kind).
			WithMeta("modifier_id", input.ModifierID)
	}

	return &attachment.ToggleModifierOutput{Enabled: enabled}, nil
}
