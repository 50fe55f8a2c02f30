// Package character provides the interface for character sheet persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheets/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
)

// Repository defines the interface for character sheet persistence.
// Every method scoped to a character checks ownership in the same
// transaction as its read or write.
type Repository interface {
	// Create creates a blank sheet for the owner together with the starter
	// currency ledger
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character owned by the scope's user
	// Returns errors.NotFound if the character doesn't exist or belongs to
	// another user
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByOwner retrieves every character of an owner ordered by name
	// Returns errors.InvalidArgument for invalid owner IDs
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Update applies a partial update to a character
	// Returns errors.NotFound if the character doesn't exist or belongs to
	// another user
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character and everything attached to it
	// Returns errors.NotFound if the character doesn't exist or belongs to
	// another user
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	OwnerID int64
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character  *entities.Character
	Currencies []*entities.Currency
}

// GetInput defines the input for getting a character
type GetInput struct {
	Scope ownership.Scope
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListByOwnerInput defines the input for listing characters by owner
type ListByOwnerInput struct {
	OwnerID int64
}

// ListByOwnerOutput defines the output for listing characters by owner
type ListByOwnerOutput struct {
	Characters []*entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Scope ownership.Scope
	Patch *entities.CharacterPatch
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Scope ownership.Scope
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
