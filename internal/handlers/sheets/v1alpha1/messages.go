package v1alpha1

import (
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/services/character"
	"github.com/KirkDiggler/rpg-sheets/internal/stats"
)

// Account messages

// RegisterRequest creates an account
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterResponse returns the new account
type RegisterResponse struct {
	User *entities.User `json:"user"`
}

// LoginRequest opens a session
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for later calls
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt int64          `json:"expires_at"`
	User      *entities.User `json:"user"`
}

// LogoutRequest closes the calling session
type LogoutRequest struct{}

// LogoutResponse is empty
type LogoutResponse struct{}

// WhoAmIRequest asks for the calling actor
type WhoAmIRequest struct{}

// WhoAmIResponse returns the calling actor
type WhoAmIResponse struct {
	Actor entities.Actor `json:"actor"`
}

// SetDisplayPreferenceRequest changes the caller's display preference
type SetDisplayPreferenceRequest struct {
	Preference string `json:"preference"`
}

// SetDisplayPreferenceResponse returns the updated account
type SetDisplayPreferenceResponse struct {
	User *entities.User `json:"user"`
}

// ListUsersRequest lists every account (admin only)
type ListUsersRequest struct{}

// ListUsersResponse returns every account
type ListUsersResponse struct {
	Users []*entities.User `json:"users"`
}

// SetAdminRequest grants or revokes admin rights (admin only)
type SetAdminRequest struct {
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
}

// SetAdminResponse returns the updated account
type SetAdminResponse struct {
	User *entities.User `json:"user"`
}

// DeleteUserRequest deletes an account (admin only)
type DeleteUserRequest struct {
	UserID int64 `json:"user_id"`
}

// DeleteUserResponse reports how many sessions were revoked
type DeleteUserResponse struct {
	RevokedSessions int `json:"revoked_sessions"`
}

// Character messages

// CreateCharacterRequest creates a blank sheet
type CreateCharacterRequest struct{}

// CreateCharacterResponse returns the sheet and its starter currencies
type CreateCharacterResponse struct {
	Character  *entities.Character  `json:"character"`
	Currencies []*entities.Currency `json:"currencies"`
}

// ListCharactersRequest lists the caller's characters
type ListCharactersRequest struct{}

// ListCharactersResponse returns the caller's characters by name
type ListCharactersResponse struct {
	Characters []*entities.Character `json:"characters"`
}

// GetSheetRequest loads a full sheet
type GetSheetRequest struct {
	CharacterID int64 `json:"character_id"`
}

// GetSheetResponse returns a full sheet
type GetSheetResponse struct {
	Sheet *character.Sheet `json:"sheet"`
}

// UpdateCharacterRequest applies raw form values to a sheet
type UpdateCharacterRequest struct {
	CharacterID int64             `json:"character_id"`
	Values      map[string]string `json:"values"`
}

// UpdateCharacterResponse returns the updated sheet record
type UpdateCharacterResponse struct {
	Character *entities.Character `json:"character"`
}

// DeleteCharacterRequest deletes a character
type DeleteCharacterRequest struct {
	CharacterID int64 `json:"character_id"`
}

// DeleteCharacterResponse is empty
type DeleteCharacterResponse struct{}

// GetBonusesRequest asks for a character's aggregated bonuses
type GetBonusesRequest struct {
	CharacterID int64 `json:"character_id"`
}

// GetBonusesResponse maps stat keys to bonuses; absent keys are zero
type GetBonusesResponse struct {
	Bonuses entities.Bonuses `json:"bonuses"`
}

// ListStatOptionsRequest asks for the stat vocabulary
type ListStatOptionsRequest struct{}

// ListStatOptionsResponse returns the stat vocabulary
type ListStatOptionsResponse struct {
	Options []stats.Option `json:"options"`
}

// AddCurrencyRequest adds a coin type
type AddCurrencyRequest struct {
	CharacterID  int64  `json:"character_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// RenameCurrencyRequest renames a coin type
type RenameCurrencyRequest struct {
	CharacterID  int64  `json:"character_id"`
	CurrencyID   int64  `json:"currency_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// CurrencyResponse returns one coin type
type CurrencyResponse struct {
	Currency *entities.Currency `json:"currency"`
}

// AdjustCurrencyRequest applies a signed delta
type AdjustCurrencyRequest struct {
	CharacterID int64 `json:"character_id"`
	CurrencyID  int64 `json:"currency_id"`
	Delta       int64 `json:"delta"`
}

// AdjustCurrencyResponse returns the new amount
type AdjustCurrencyResponse struct {
	Amount int64 `json:"amount"`
}

// DeleteCurrencyRequest removes a coin type
type DeleteCurrencyRequest struct {
	CharacterID int64 `json:"character_id"`
	CurrencyID  int64 `json:"currency_id"`
}

// DeleteCurrencyResponse is empty
type DeleteCurrencyResponse struct{}

// Attachment messages

// ItemRequest creates or updates an inventory item. ItemID is ignored on
// create; Equipped is ignored on update.
type ItemRequest struct {
	CharacterID int64                    `json:"character_id"`
	ItemID      int64                    `json:"item_id,omitempty"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Location    string                   `json:"location"`
	Quantity    string                   `json:"quantity"`
	Equipped    bool                     `json:"equipped"`
	Modifiers   []entities.ModifierInput `json:"modifiers"`
}

// ItemResponse returns one item with its modifiers
type ItemResponse struct {
	Item *entities.InventoryItem `json:"item"`
}

// FeatureRequest creates or updates a feature. FeatureID is ignored on create.
type FeatureRequest struct {
	CharacterID int64                    `json:"character_id"`
	FeatureID   int64                    `json:"feature_id,omitempty"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Source      string                   `json:"source"`
	Modifiers   []entities.ModifierInput `json:"modifiers"`
}

// FeatureResponse returns one feature with its modifiers
type FeatureResponse struct {
	Feature *entities.Feature `json:"feature"`
}

// SpellRequest creates or updates a spell. SpellID is ignored on create.
type SpellRequest struct {
	CharacterID int64                    `json:"character_id"`
	SpellID     int64                    `json:"spell_id,omitempty"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Level       string                   `json:"level"`
	Modifiers   []entities.ModifierInput `json:"modifiers"`
}

// SpellResponse returns one spell with its modifiers
type SpellResponse struct {
	Spell *entities.Spell `json:"spell"`
}

// AttachmentRef names one attachment of a character
type AttachmentRef struct {
	CharacterID int64 `json:"character_id"`
	ID          int64 `json:"id"`
}

// DeleteAttachmentResponse is empty
type DeleteAttachmentResponse struct{}

// ToggleEquippedResponse returns the item's new equipped state
type ToggleEquippedResponse struct {
	Equipped bool `json:"equipped"`
}

// ToggleModifierRequest flips one modifier
type ToggleModifierRequest struct {
	CharacterID int64  `json:"character_id"`
	Kind        string `json:"kind"`
	ModifierID  int64  `json:"modifier_id"`
}

// ToggleModifierResponse returns the modifier's new enabled state
type ToggleModifierResponse struct {
	Enabled bool `json:"enabled"`
}
