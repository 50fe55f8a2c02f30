// Package feature provides the interface for class, race and background
// feature persistence
package feature

//go:generate mockgen -destination=mock/mock_repository.go -package=featuremock github.com/KirkDiggler/rpg-sheets/internal/repositories/feature Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
)

// Repository defines the interface for feature persistence. Features are
// returned with their modifiers loaded.
type Repository interface {
	// Create adds a feature and its modifiers to a character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character is not the user's
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves one feature
	// Returns errors.NotFound if the feature is missing or not the user's
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves a character's features by sort order and name
	// Returns errors.NotFound if the character is not the user's
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update overwrites a feature's fields and replaces all of its modifiers
	// Returns errors.NotFound if the feature is missing or not the user's
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a feature and its modifiers
	// Returns errors.NotFound if the feature is missing or not the user's
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ToggleModifier flips one modifier's enabled flag
	// Returns errors.NotFound if the modifier is missing or not the user's
	ToggleModifier(ctx context.Context, input ToggleModifierInput) (*ToggleModifierOutput, error)

	// SumBonuses totals the enabled modifiers of all the character's
	// features by stat. Callers check ownership first.
	SumBonuses(ctx context.Context, characterID int64) (entities.Bonuses, error)
}

// CreateInput defines the input for creating a feature
type CreateInput struct {
	Scope   ownership.Scope
	Feature *entities.Feature
}

// CreateOutput defines the output for creating a feature
type CreateOutput struct {
	Feature *entities.Feature
}

// GetInput defines the input for getting a feature
type GetInput struct {
	Scope ownership.Scope
	ID    int64
}

// GetOutput defines the output for getting a feature
type GetOutput struct {
	Feature *entities.Feature
}

// ListInput defines the input for listing features
type ListInput struct {
	Scope ownership.Scope
}

// ListOutput defines the output for listing features
type ListOutput struct {
	Features []*entities.Feature
}

// UpdateInput defines the input for updating a feature. Feature.ID selects
// the row.
type UpdateInput struct {
	Scope   ownership.Scope
	Feature *entities.Feature
}

// UpdateOutput defines the output for updating a feature
type UpdateOutput struct {
	Feature *entities.Feature
}

// DeleteInput defines the input for deleting a feature
type DeleteInput struct {
	Scope ownership.Scope
	ID    int64
}

// DeleteOutput defines the output for deleting a feature
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
