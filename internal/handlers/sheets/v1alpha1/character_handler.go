package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler implements CharacterServiceServer
type CharacterHandler struct {
	characterService character.Service
}

var _ CharacterServiceServer = (*CharacterHandler)(nil)

// NewCharacterHandler creates a new character handler with the given configuration
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{
		characterService: cfg.CharacterService,
	}, nil
}

// CreateCharacter creates a blank sheet with the starter currencies
func (h *CharacterHandler) CreateCharacter(
	ctx context.Context,
	_ *CreateCharacterRequest,
) (*CreateCharacterResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{Actor: actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateCharacterResponse{
		Character:  out.Character,
		Currencies: out.Currencies,
	}, nil
}

// ListCharacters lists the caller's characters
func (h *CharacterHandler) ListCharacters(
	ctx context.Context,
	_ *ListCharactersRequest,
) (*ListCharactersResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{Actor: actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListCharactersResponse{Characters: out.Characters}, nil
}

// GetSheet loads a full sheet with its bonuses
func (h *CharacterHandler) GetSheet(ctx context.Context, req *GetSheetRequest) (*GetSheetResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.GetSheet(ctx, &character.GetSheetInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSheetResponse{Sheet: out.Sheet}, nil
}

// UpdateCharacter applies raw form values to a sheet
func (h *CharacterHandler) UpdateCharacter(
	ctx context.Context,
	req *UpdateCharacterRequest,
) (*UpdateCharacterResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.UpdateCharacter(ctx, &character.UpdateCharacterInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		Values:      req.Values,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateCharacterResponse{Character: out.Character}, nil
}

// DeleteCharacter deletes a character and everything attached to it
func (h *CharacterHandler) DeleteCharacter(
	ctx context.Context,
	req *DeleteCharacterRequest,
) (*DeleteCharacterResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, err = h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCharacterResponse{}, nil
}

// GetBonuses returns the character's aggregated bonuses
func (h *CharacterHandler) GetBonuses(ctx context.Context, req *GetBonusesRequest) (*GetBonusesResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.GetBonuses(ctx, &character.GetBonusesInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBonusesResponse{Bonuses: out.Bonuses}, nil
}

// ListStatOptions returns the stat vocabulary. It needs no session.
func (h *CharacterHandler) ListStatOptions(
	ctx context.Context,
	_ *ListStatOptionsRequest,
) (*ListStatOptionsResponse, error) {
	out, err := h.characterService.ListStatOptions(ctx, &character.ListStatOptionsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListStatOptionsResponse{Options: out.Options}, nil
}

// AddCurrency adds a coin type at amount zero
func (h *CharacterHandler) AddCurrency(ctx context.Context, req *AddCurrencyRequest) (*CurrencyResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.AddCurrency(ctx, &character.AddCurrencyInput{
		Actor:        actor,
		CharacterID:  req.CharacterID,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CurrencyResponse{Currency: out.Currency}, nil
}

// RenameCurrency renames a coin type
func (h *CharacterHandler) RenameCurrency(ctx context.Context, req *RenameCurrencyRequest) (*CurrencyResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.RenameCurrency(ctx, &character.RenameCurrencyInput{
		Actor:        actor,
		CharacterID:  req.CharacterID,
		CurrencyID:   req.CurrencyID,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CurrencyResponse{Currency: out.Currency}, nil
}

// AdjustCurrency applies a signed delta, clamping at zero
func (h *CharacterHandler) AdjustCurrency(
	ctx context.Context,
	req *AdjustCurrencyRequest,
) (*AdjustCurrencyResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.characterService.AdjustCurrency(ctx, &character.AdjustCurrencyInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		CurrencyID:  req.CurrencyID,
		Delta:       req.Delta,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AdjustCurrencyResponse{Amount: out.Amount}, nil
}

// DeleteCurrency removes a coin type
func (h *CharacterHandler) DeleteCurrency(
	ctx context.Context,
	req *DeleteCurrencyRequest,
) (*DeleteCurrencyResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	_, err = h.characterService.DeleteCurrency(ctx, &character.DeleteCurrencyInput{
		Actor:       actor,
		CharacterID: req.CharacterID,
		CurrencyID:  req.CurrencyID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCurrencyResponse{}, nil
}
