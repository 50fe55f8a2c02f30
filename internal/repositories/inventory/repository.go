// Package inventory provides the interface for inventory item persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/rpg-sheets/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
)

// Repository defines the interface for inventory persistence. Items are
// returned with their modifiers loaded.
type Repository interface {
	// Create adds an item and its modifiers to a character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character is not the user's
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves one item
	// Returns errors.NotFound if the item is missing or not the user's
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves a character's items, equipped first, then by sort
	// order and name
	// Returns errors.NotFound if the character is not the user's
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update overwrites an item's fields and replaces all of its modifiers
	// Returns errors.NotFound if the item is missing or not the user's
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item and its modifiers
	// Returns errors.NotFound if the item is missing or not the user's
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ToggleEquipped flips the equipped flag
	// Returns errors.NotFound if the item is missing or not the user's
	ToggleEquipped(ctx context.Context, input ToggleEquippedInput) (*ToggleEquippedOutput, error)

	// ToggleModifier flips one modifier's enabled flag
	// Returns errors.NotFound if the modifier is missing or not the user's
	ToggleModifier(ctx context.Context, input ToggleModifierInput) (*ToggleModifierOutput, error)

	// SumBonuses totals the enabled modifiers of the character's equipped
	// items by stat. Callers check ownership first.
	SumBonuses(ctx context.Context, characterID int64) (entities.Bonuses, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Scope ownership.Scope
	Item  *entities.InventoryItem
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *entities.InventoryItem
}

// GetInput defines the input for getting an item
type GetInput struct {
	Scope ownership.Scope
	ID    int64
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.InventoryItem
}

// ListInput defines the input for listing items
type ListInput struct {
	Scope ownership.Scope
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*entities.InventoryItem
}

// UpdateInput defines the input for updating an item. Item.ID selects the
// row; Equipped and SortOrder are left as stored.
type UpdateInput struct {
	Scope ownership.Scope
	Item  *entities.InventoryItem
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *entities.InventoryItem
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	Scope ownership.Scope
	ID    int64
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ToggleEquippedInput defines the input for toggling the equipped flag
type ToggleEquippedInput struct {
	Scope ownership.Scope
	ID    int64
}

// ToggleEquippedOutput defines the output for toggling the equipped flag
type ToggleEquippedOutput struct {
	Equipped bool
}

// ToggleModifierInput defines the input for toggling a modifier
type ToggleModifierInput struct {
	Scope      ownership.Scope
	ModifierID int64
}

// ToggleModifierOutput defines the output for toggling a modifier
type ToggleModifierOutput struct {
	Enabled bool
}
