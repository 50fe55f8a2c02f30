// Package attachment defines the interface for the collections hanging off a
// character sheet: inventory items, features and spells, and the stat
// modifiers they carry
package attachment

//go:generate mockgen -destination=mock/mock_service.go -package=attachmentmock github.com/KirkDiggler/rpg-sheets/internal/services/attachment Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
)

// Service defines the interface for attachment operations. Every call is
// scoped to a character the actor must own; anything else is NotFound.
type Service interface {
	// Inventory
	CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error)
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error)
	ToggleEquipped(ctx context.Context, input *ToggleEquippedInput) (*ToggleEquippedOutput, error)

	// Features
	CreateFeature(ctx context.Context, input *CreateFeatureInput) (*CreateFeatureOutput, error)
	GetFeature(ctx context.Context, input *GetFeatureInput) (*GetFeatureOutput, error)
	UpdateFeature(ctx context.Context, input *UpdateFeatureInput) (*UpdateFeatureOutput, error)
	DeleteFeature(ctx context.Context, input *DeleteFeatureInput) (*DeleteFeatureOutput, error)

	// Spells
	CreateSpell(ctx context.Context, input *CreateSpellInput) (*CreateSpellOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*UpdateSpellOutput, error)
	DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*DeleteSpellOutput, error)

	// Modifiers of any kind
	ToggleModifier(ctx context.Context, input *ToggleModifierInput) (*ToggleModifierOutput, error)
}

// ItemFields are the submitted fields of an inventory item. Quantity is
// raw form text; blank or non-numeric means untracked.
type ItemFields struct {
	Name        string
	Description string
	Location    string
	Quantity    string
	Modifiers   []entities.ModifierInput
}

// FeatureFields are the submitted fields of a feature
type FeatureFields struct {
	Name        string
	Description string
	Source      string
	Modifiers   []entities.ModifierInput
}

// SpellFields are the submitted fields of a spell. Level is raw form text,
// clamped to 0..9.
type SpellFields struct {
	Name        string
	Description string
	Level       string
	Modifiers   []entities.ModifierInput
}

// CreateItemInput defines the request for adding an item
type CreateItemInput struct {
	Actor       entities.Actor
	CharacterID int64
	Fields      ItemFields
	Equipped    bool
}

// CreateItemOutput defines the response for adding an item
type CreateItemOutput struct {
	Item *entities.InventoryItem
}

// GetItemInput defines the request for reading an item
type GetItemInput struct {
	Actor       entities.Actor
	CharacterID int64
	ItemID      int64
}

// GetItemOutput defines the response for reading an item
type GetItemOutput struct {
	Item *entities.InventoryItem
}

// UpdateItemInput overwrites an item's fields and replaces all its
// modifiers. The equipped flag is left alone.
type UpdateItemInput struct {
	Actor       entities.Actor
	CharacterID int64
	ItemID      int64
	Fields      ItemFields
}

// UpdateItemOutput defines the response for updating an item
type UpdateItemOutput struct {
	Item *entities.InventoryItem
}

// DeleteItemInput defines the request for removing an item
type DeleteItemInput struct {
	Actor       entities.Actor
	CharacterID int64
	ItemID      int64
}

// DeleteItemOutput defines the response for removing an item
type DeleteItemOutput struct{}

// ToggleEquippedInput defines the request for flipping an item's equipped flag
type ToggleEquippedInput struct {
	Actor       entities.Actor
	CharacterID int64
	ItemID      int64
}

// ToggleEquippedOutput carries the new equipped state
type ToggleEquippedOutput struct {
	Equipped bool
}

// CreateFeatureInput defines the request for adding a feature
type CreateFeatureInput struct {
	Actor       entities.Actor
	CharacterID int64
	Fields      FeatureFields
}

// CreateFeatureOutput defines the response for adding a feature
type CreateFeatureOutput struct {
	Feature *entities.Feature
}

// GetFeatureInput defines the request for reading a feature
type GetFeatureInput struct {
	Actor       entities.Actor
	CharacterID int64
	FeatureID   int64
}

// GetFeatureOutput defines the response for reading a feature
type GetFeatureOutput struct {
	Feature *entities.Feature
}

// UpdateFeatureInput overwrites a feature and replaces all its modifiers
type UpdateFeatureInput struct {
	Actor       entities.Actor
	CharacterID int64
	FeatureID   int64
	Fields      FeatureFields
}

// UpdateFeatureOutput defines the response for updating a feature
type UpdateFeatureOutput struct {
	Feature *entities.Feature
}

// DeleteFeatureInput defines the request for removing a feature
type DeleteFeatureInput struct {
	Actor       entities.Actor
	CharacterID int64
	FeatureID   int64
}

// DeleteFeatureOutput defines the response for removing a feature
type DeleteFeatureOutput struct{}

// CreateSpellInput defines the request for adding a spell
type CreateSpellInput struct {
	Actor       entities.Actor
	CharacterID int64
	Fields      SpellFields
}

// CreateSpellOutput defines the response for adding a spell
type CreateSpellOutput struct {
	Spell *entities.Spell
}

// GetSpellInput defines the request for reading a spell
type GetSpellInput struct {
	Actor       entities.Actor
	CharacterID int64
	SpellID     int64
}

// GetSpellOutput defines the response for reading a spell
type GetSpellOutput struct {
	Spell *entities.Spell
}

// UpdateSpellInput overwrites a spell and replaces all its modifiers
type UpdateSpellInput struct {
	Actor       entities.Actor
	CharacterID int64
	SpellID     int64
	Fields      SpellFields
}

// UpdateSpellOutput defines the response for updating a spell
type UpdateSpellOutput struct {
	Spell *entities.Spell
}

// DeleteSpellInput defines the request for removing a spell
type DeleteSpellInput struct {
	Actor       entities.Actor
	CharacterID int64
	SpellID     int64
}

// DeleteSpellOutput defines the response for removing a spell
type DeleteSpellOutput struct{}

// ToggleModifierInput defines the request for flipping one modifier
type ToggleModifierInput struct {
	Actor       entities.Actor
	CharacterID int64
	Kind        entities.AttachmentKind
	ModifierID  int64
}

// ToggleModifierOutput carries the modifier's new enabled state
type ToggleModifierOutput struct {
	Enabled bool
}
