// Package currency provides the interface for the per-character coin ledger
package currency

//go:generate mockgen -destination=mock/mock_repository.go -package=currencymock github.com/KirkDiggler/rpg-sheets/internal/repositories/currency Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
)

// Repository defines the interface for currency persistence
type Repository interface {
	// Create adds a coin type at amount zero
	// Returns errors.InvalidArgument for a blank name
	// Returns errors.NotFound if the character is not the user's
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// List retrieves a character's currencies in sort order
	// Returns errors.NotFound if the character is not the user's
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Rename changes a currency's name and abbreviation
	// Returns errors.InvalidArgument for a blank name
	// Returns errors.NotFound if the currency is missing or not the user's
	Rename(ctx context.Context, input RenameInput) (*RenameOutput, error)

	// Adjust adds a signed delta to the amount, flooring the result at zero
	// Returns errors.NotFound if the currency is missing or not the user's
	Adjust(ctx context.Context, input AdjustInput) (*AdjustOutput, error)

	// Delete removes a currency
	// Returns errors.NotFound if the currency is missing or not the user's
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a currency
type CreateInput struct {
	Scope        ownership.Scope
	Name         string
	Abbreviation string
}

// CreateOutput defines the output for creating a currency
type CreateOutput struct {
	Currency *entities.Currency
}

// ListInput defines the input for listing currencies
type ListInput struct {
	Scope ownership.Scope
}

// ListOutput defines the output for listing currencies
type ListOutput struct {
	Currencies []*entities.Currency
}

// RenameInput defines the input for renaming a currency
type RenameInput struct {
	Scope        ownership.Scope
	ID           int64
	Name         string
	Abbreviation string
}

// RenameOutput defines the output for renaming a currency
type RenameOutput struct {
	Currency *entities.Currency
}

// AdjustInput defines the input for adjusting a currency amount
type AdjustInput struct {
	Scope ownership.Scope
	ID    int64
	Delta int64
}

// AdjustOutput defines the output for adjusting a currency amount
type AdjustOutput struct {
	Amount int64
}

// DeleteInput defines the input for deleting a currency
type DeleteInput struct {
	Scope ownership.Scope
	ID    int64
}

// DeleteOutput defines the output for deleting a currency
type DeleteOutput struct{}
