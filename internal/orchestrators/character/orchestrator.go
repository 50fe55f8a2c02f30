// Package character implements the character orchestrator
package character

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/orchestrators/bonus"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	characterrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/character"
	currencyrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/currency"
	featurerepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/feature"
	inventoryrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/inventory"
	spellrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/spell"
	"github.com/KirkDiggler/rpg-sheets/internal/services/character"
	"github.com/KirkDiggler/rpg-sheets/internal/stats"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	CurrencyRepo  currencyrepo.Repository
	InventoryRepo inventoryrepo.Repository
	FeatureRepo   featurerepo.Repository
	SpellRepo     spellrepo.Repository
	Bonuses       bonus.Service
	Catalog       *stats.Catalog
	Logger        *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CurrencyRepo == nil {
		vb.RequiredField("CurrencyRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.FeatureRepo == nil {
		vb.RequiredField("FeatureRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.Bonuses == nil {
		vb.RequiredField("Bonuses")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	currencyRepo  currencyrepo.Repository
	inventoryRepo inventoryrepo.Repository
	featureRepo   featurerepo.Repository
	spellRepo     spellrepo.Repository
	bonuses       bonus.Service
	catalog       *stats.Catalog
	logger        *zap.Logger
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = stats.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		currencyRepo:  cfg.CurrencyRepo,
		inventoryRepo: cfg.InventoryRepo,
		featureRepo:   cfg.FeatureRepo,
		spellRepo:     cfg.SpellRepo,
		bonuses:       cfg.Bonuses,
		catalog:       catalog,
		logger:        logger.Named("character"),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

func scopeFor(actor entities.Actor, characterID int64) ownership.Scope {
	return ownership.Scope{UserID: actor.UserID, CharacterID: characterID}
}

// Sheet lifecycle methods

// CreateCharacter creates a blank sheet with the starter currencies
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("actor", input.Actor.UserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{OwnerID: input.Actor.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	o.logger.Info("created character",
		zap.Int64("user_id", input.Actor.UserID),
		zap.Int64("character_id", created.Character.ID))

	return &character.CreateCharacterOutput{
		Character:  created.Character,
		Currencies: created.Currencies,
	}, nil
}

// ListCharacters lists the actor's characters by name
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listed, err := o.characterRepo.ListByOwner(ctx, characterrepo.ListByOwnerInput{OwnerID: input.Actor.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: listed.Characters}, nil
}

// GetSheet loads a character with every collection and its current bonuses
func (o *Orchestrator) GetSheet(ctx context.Context, input *character.GetSheetInput) (*character.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	scope := scopeFor(input.Actor, input.CharacterID)

	loaded, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Scope: scope})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	items, err := o.inventoryRepo.List(ctx, inventoryrepo.ListInput{Scope: scope})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	features, err := o.featureRepo.List(ctx, featurerepo.ListInput{Scope: scope})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list features")
	}

	spells, err := o.spellRepo.List(ctx, spellrepo.ListInput{Scope: scope})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	currencies, err := o.currencyRepo.List(ctx, currencyrepo.ListInput{Scope: scope})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list currencies")
	}

	aggregated, err := o.bonuses.Aggregate(ctx, &bonus.AggregateInput{CharacterID: loaded.Character.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate bonuses")
	}

	return &character.GetSheetOutput{
		Sheet: &character.Sheet{
			Character:  loaded.Character,
			Items:      items.Items,
			Features:   features.Features,
			Spells:     spells.Spells,
			Currencies: currencies.Currencies,
			Bonuses:    aggregated.Bonuses,
		},
	}, nil
}

// UpdateCharacter applies the allow-listed form values to the sheet
func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *character.UpdateCharacterInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	patch := entities.ParseCharacterPatch(input.Values)
	if name, ok := patch.Text(entities.FieldName); ok {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", name, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		Patch: patch,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	o.logger.Debug("updated character",
		zap.Int64("character_id", input.CharacterID),
		zap.Int("fields", len(patch.Fields())))

	return &character.UpdateCharacterOutput{Character: updated.Character}, nil
}

// DeleteCharacter removes a character and everything attached to it
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{Scope: scopeFor(input.Actor, input.CharacterID)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	o.logger.Info("deleted character",
		zap.Int64("user_id", input.Actor.UserID),
		zap.Int64("character_id", input.CharacterID))

	return &character.DeleteCharacterOutput{}, nil
}

// Derived data

// GetBonuses returns the aggregated bonuses of an owned character
func (o *Orchestrator) GetBonuses(ctx context.Context, input *character.GetBonusesInput) (*character.GetBonusesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	loaded, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Scope: scopeFor(input.Actor, input.CharacterID)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	aggregated, err := o.bonuses.Aggregate(ctx, &bonus.AggregateInput{CharacterID: loaded.Character.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate bonuses")
	}

	return &character.GetBonusesOutput{Bonuses: aggregated.Bonuses}, nil
}

// ListStatOptions returns the stat vocabulary offered to forms
func (o *Orchestrator) ListStatOptions(_ context.Context, _ *character.ListStatOptionsInput) (*character.ListStatOptionsOutput, error) {
	return &character.ListStatOptionsOutput{Options: o.catalog.Options()}, nil
}

// Currency ledger

// AddCurrency adds a coin type at amount zero
func (o *Orchestrator) AddCurrency(ctx context.Context, input *character.AddCurrencyInput) (*character.AddCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	created, err := o.currencyRepo.Create(ctx, currencyrepo.CreateInput{
		Scope:        scopeFor(input.Actor, input.CharacterID),
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add currency")
	}

	return &character.AddCurrencyOutput{Currency: created.Currency}, nil
}

// RenameCurrency changes a coin type's name and abbreviation
func (o *Orchestrator) RenameCurrency(ctx context.Context, input *character.RenameCurrencyInput) (*character.RenameCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("currency_id", input.CurrencyID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	renamed, err := o.currencyRepo.Rename(ctx, currencyrepo.RenameInput{
		Scope:        scopeFor(input.Actor, input.CharacterID),
		ID:           input.CurrencyID,
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to rename currency")
	}

	return &character.RenameCurrencyOutput{Currency: renamed.Currency}, nil
}

// AdjustCurrency applies a signed delta, flooring the amount at zero
func (o *Orchestrator) AdjustCurrency(ctx context.Context, input *character.AdjustCurrencyInput) (*character.AdjustCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	adjusted, err := o.currencyRepo.Adjust(ctx, currencyrepo.AdjustInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.CurrencyID,
		Delta: input.Delta,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust currency")
	}

	return &character.AdjustCurrencyOutput{Amount: adjusted.Amount}, nil
}

// DeleteCurrency removes a coin type
func (o *Orchestrator) DeleteCurrency(ctx context.Context, input *character.DeleteCurrencyInput) (*character.DeleteCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.currencyRepo.Delete(ctx, currencyrepo.DeleteInput{
		Scope: scopeFor(input.Actor, input.CharacterID),
		ID:    input.CurrencyID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete currency")
	}

	return &character.DeleteCurrencyOutput{}, nil
}
