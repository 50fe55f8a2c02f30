// Package spell provides the interface for known-spell persistence
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/KirkDiggler/rpg-sheets/internal/repositories/spell Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
)

// Repository defines the interface for spell persistence. Spells are
// returned with their modifiers loaded.
type Repository interface {
	// Create adds a spell and its modifiers to a character. The level is
	// clamped to the valid spell range.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character is not the user's
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves one spell
	// Returns errors.NotFound if the spell is missing or not the user's
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves a character's spells by level, sort order and name
	// Returns errors.NotFound if the character is not the user's
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update overwrites a spell's fields and replaces all of its modifiers
	// Returns errors.NotFound if the spell is missing or not the user's
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a spell and its modifiers
	// Returns errors.NotFound if the spell is missing or not the user's
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ToggleModifier flips one modifier's enabled flag
	// Returns errors.NotFound if the modifier is missing or not the user's
	ToggleModifier(ctx context.Context, input ToggleModifierInput) (*ToggleModifierOutput, error)

	// SumBonuses totals the enabled modifiers of all the character's
	// spells by stat. Callers check ownership first.
	SumBonuses(ctx context.Context, characterID int64) (entities.Bonuses, error)
}

// CreateInput defines the input for creating a spell
type CreateInput struct {
	Scope ownership.Scope
	Spell *entities.Spell
}

// CreateOutput defines the output for creating a spell
type CreateOutput struct {
	Spell *entities.Spell
}

// GetInput defines the input for getting a spell
type GetInput struct {
	Scope ownership.Scope
	ID    int64
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *entities.Spell
}

// ListInput defines the input for listing spells
type ListInput struct {
	Scope ownership.Scope
}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Spells []*entities.Spell
}

// UpdateInput defines the input for updating a spell. Spell.ID selects
// the row.
type UpdateInput struct {
	Scope ownership.Scope
	Spell *entities.Spell
}

// UpdateOutput defines the output for updating a spell
type UpdateOutput struct {
	Spell *entities.Spell
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	Scope ownership.Scope
	ID    int64
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}

// ToggleModifierInput defines the input for toggling a modifier
type ToggleModifierInput struct {
	Scope      ownership.Scope
	ModifierID int64
}

// ToggleModifierOutput defines the output for toggling a modifier
type ToggleModifierOutput struct {
	Enabled bool
}
