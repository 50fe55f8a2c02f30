// Package character defines the interface for character sheet operations:
// the sheet record, the aggregated sheet view and the currency ledger
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheets/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/stats"
)

// Service defines the interface for character operations
type Service interface {
	// Sheet lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Derived data
	GetBonuses(ctx context.Context, input *GetBonusesInput) (*GetBonusesOutput, error)
	ListStatOptions(ctx context.Context, input *ListStatOptionsInput) (*ListStatOptionsOutput, error)

	// Currency ledger
	AddCurrency(ctx context.Context, input *AddCurrencyInput) (*AddCurrencyOutput, error)
	RenameCurrency(ctx context.Context, input *RenameCurrencyInput) (*RenameCurrencyOutput, error)
	AdjustCurrency(ctx context.Context, input *AdjustCurrencyInput) (*AdjustCurrencyOutput, error)
	DeleteCurrency(ctx context.Context, input *DeleteCurrencyInput) (*DeleteCurrencyOutput, error)
}

// Sheet is everything needed to render one character
type Sheet struct {
	Character  *entities.Character       `json:"character"`
	Items      []*entities.InventoryItem `json:"items"`
	Features   []*entities.Feature       `json:"features"`
	Spells     []*entities.Spell         `json:"spells"`
	Currencies []*entities.Currency      `json:"currencies"`
	Bonuses    entities.Bonuses          `json:"bonuses"`
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Actor entities.Actor
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character  *entities.Character
	Currencies []*entities.Currency
}

// ListCharactersInput defines the request for listing the actor's characters
type ListCharactersInput struct {
	Actor entities.Actor
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// GetSheetInput defines the request for loading a sheet
type GetSheetInput struct {
	Actor       entities.Actor
	CharacterID int64
}

// GetSheetOutput defines the response for loading a sheet
type GetSheetOutput struct {
	Sheet *Sheet
}

// UpdateCharacterInput defines a partial sheet update from raw form values.
// Keys outside the editable allow-list are ignored.
type UpdateCharacterInput struct {
	Actor       entities.Actor
	CharacterID int64
	Values      map[string]string
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	Actor       entities.Actor
	CharacterID int64
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// GetBonusesInput defines the request for a character's aggregated bonuses
type GetBonusesInput struct {
	Actor       entities.Actor
	CharacterID int64
}

// GetBonusesOutput defines the response for aggregated bonuses
type GetBonusesOutput struct {
	Bonuses entities.Bonuses
}

// ListStatOptionsInput defines the request for the stat vocabulary
type ListStatOptionsInput struct{}

// ListStatOptionsOutput defines the response for the stat vocabulary
type ListStatOptionsOutput struct {
	Options []stats.Option
}

// AddCurrencyInput defines the request for adding a coin type
type AddCurrencyInput struct {
	Actor        entities.Actor
	CharacterID  int64
	Name         string
	Abbreviation string
}

// AddCurrencyOutput defines the response for adding a coin type
type AddCurrencyOutput struct {
	Currency *entities.Currency
}

// RenameCurrencyInput defines the request for renaming a coin type
type RenameCurrencyInput struct {
	Actor        entities.Actor
	CharacterID  int64
	CurrencyID   int64
	Name         string
	Abbreviation string
}

// RenameCurrencyOutput defines the response for renaming a coin type
type RenameCurrencyOutput struct {
	Currency *entities.Currency
}

// AdjustCurrencyInput defines the request for a signed adjustment
type AdjustCurrencyInput struct {
	Actor       entities.Actor
	CharacterID int64
	CurrencyID  int64
	Delta       int64
}

// AdjustCurrencyOutput defines the response for an adjustment
type AdjustCurrencyOutput struct {
	Amount int64
}

// DeleteCurrencyInput defines the request for removing a coin type
type DeleteCurrencyInput struct {
	Actor       entities.Actor
	CharacterID int64
	CurrencyID  int64
}

// DeleteCurrencyOutput defines the response for removing a coin type
type DeleteCurrencyOutput struct{}
