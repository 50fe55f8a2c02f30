package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// AccountServiceClient calls the account service with JSON-encoded messages
type AccountServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAccountServiceClient wraps cc
func NewAccountServiceClient(cc grpc.ClientConnInterface) *AccountServiceClient {
	return &AccountServiceClient{cc: cc}
}

// Register calls AccountService.Register
func (c *AccountServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, AccountServiceName, "Register", in, opts)
}

// Login calls AccountService.Login
func (c *AccountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AccountServiceName, "Login", in, opts)
}

// Logout calls AccountService.Logout
func (c *AccountServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, AccountServiceName, "Logout", in, opts)
}

// WhoAmI calls AccountService.WhoAmI
func (c *AccountServiceClient) WhoAmI(ctx context.Context, in *WhoAmIRequest, opts ...grpc.CallOption) (*WhoAmIResponse, error) {
	return invoke[WhoAmIResponse](ctx, c.cc, AccountServiceName, "WhoAmI", in, opts)
}

// SetDisplayPreference calls AccountService.SetDisplayPreference
func (c *AccountServiceClient) SetDisplayPreference(ctx context.Context, in *SetDisplayPreferenceRequest, opts ...grpc.CallOption) (*SetDisplayPreferenceResponse, error) {
	return invoke[SetDisplayPreferenceResponse](ctx, c.cc, AccountServiceName, "SetDisplayPreference", in, opts)
}

// ListUsers calls AccountService.ListUsers
func (c *AccountServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, AccountServiceName, "ListUsers", in, opts)
}

// SetAdmin calls AccountService.SetAdmin
func (c *AccountServiceClient) SetAdmin(ctx context.Context, in *SetAdminRequest, opts ...grpc.CallOption) (*SetAdminResponse, error) {
	return invoke[SetAdminResponse](ctx, c.cc, AccountServiceName, "SetAdmin", in, opts)
}

// DeleteUser calls AccountService.DeleteUser
func (c *AccountServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	return invoke[DeleteUserResponse](ctx, c.cc, AccountServiceName, "DeleteUser", in, opts)
}

// CharacterServiceClient calls the character service with JSON-encoded messages
type CharacterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient wraps cc
func NewCharacterServiceClient(cc grpc.ClientConnInterface) *CharacterServiceClient {
	return &CharacterServiceClient{cc: cc}
}

// CreateCharacter calls CharacterService.CreateCharacter
func (c *CharacterServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	return invoke[CreateCharacterResponse](ctx, c.cc, CharacterServiceName, "CreateCharacter", in, opts)
}

// ListCharacters calls CharacterService.ListCharacters
func (c *CharacterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, CharacterServiceName, "ListCharacters", in, opts)
}

// GetSheet calls CharacterService.GetSheet
func (c *CharacterServiceClient) GetSheet(ctx context.Context, in *GetSheetRequest, opts ...grpc.CallOption) (*GetSheetResponse, error) {
	return invoke[GetSheetResponse](ctx, c.cc, CharacterServiceName, "GetSheet", in, opts)
}

// UpdateCharacter calls CharacterService.UpdateCharacter
func (c *CharacterServiceClient) UpdateCharacter(ctx context.Context, in *UpdateCharacterRequest, opts ...grpc.CallOption) (*UpdateCharacterResponse, error) {
	return invoke[UpdateCharacterResponse](ctx, c.cc, CharacterServiceName, "UpdateCharacter", in, opts)
}

// DeleteCharacter calls CharacterService.DeleteCharacter
func (c *CharacterServiceClient) DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, CharacterServiceName, "DeleteCharacter", in, opts)
}

// GetBonuses calls CharacterService.GetBonuses
func (c *CharacterServiceClient) GetBonuses(ctx context.Context, in *GetBonusesRequest, opts ...grpc.CallOption) (*GetBonusesResponse, error) {
	return invoke[GetBonusesResponse](ctx, c.cc, CharacterServiceName, "GetBonuses", in, opts)
}

// ListStatOptions calls CharacterService.ListStatOptions
func (c *CharacterServiceClient) ListStatOptions(ctx context.Context, in *ListStatOptionsRequest, opts ...grpc.CallOption) (*ListStatOptionsResponse, error) {
	return invoke[ListStatOptionsResponse](ctx, c.cc, CharacterServiceName, "ListStatOptions", in, opts)
}

// AddCurrency calls CharacterService.AddCurrency
func (c *CharacterServiceClient) AddCurrency(ctx context.Context, in *AddCurrencyRequest, opts ...grpc.CallOption) (*CurrencyResponse, error) {
	return invoke[CurrencyResponse](ctx, c.cc, CharacterServiceName, "AddCurrency", in, opts)
}

// RenameCurrency calls CharacterService.RenameCurrency
func (c *CharacterServiceClient) RenameCurrency(ctx context.Context, in *RenameCurrencyRequest, opts ...grpc.CallOption) (*CurrencyResponse, error) {
	return invoke[CurrencyResponse](ctx, c.cc, CharacterServiceName, "RenameCurrency", in, opts)
}

// AdjustCurrency calls CharacterService.AdjustCurrency
func (c *CharacterServiceClient) AdjustCurrency(ctx context.Context, in *AdjustCurrencyRequest, opts ...grpc.CallOption) (*AdjustCurrencyResponse, error) {
	return invoke[AdjustCurrencyResponse](ctx, c.cc, CharacterServiceName, "AdjustCurrency", in, opts)
}

// DeleteCurrency calls CharacterService.DeleteCurrency
func (c *CharacterServiceClient) DeleteCurrency(ctx context.Context, in *DeleteCurrencyRequest, opts ...grpc.CallOption) (*DeleteCurrencyResponse, error) {
	return invoke[DeleteCurrencyResponse](ctx, c.cc, CharacterServiceName, "DeleteCurrency", in, opts)
}

// AttachmentServiceClient calls the attachment service with JSON-encoded messages
type AttachmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAttachmentServiceClient wraps cc
func NewAttachmentServiceClient(cc grpc.ClientConnInterface) *AttachmentServiceClient {
	return &AttachmentServiceClient{cc: cc}
}

// CreateItem calls AttachmentService.CreateItem
func (c *AttachmentServiceClient) CreateItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemResponse](ctx, c.cc, AttachmentServiceName, "CreateItem", in, opts)
}

// GetItem calls AttachmentService.GetItem
func (c *AttachmentServiceClient) GetItem(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemResponse](ctx, c.cc, AttachmentServiceName, "GetItem", in, opts)
}

// UpdateItem calls AttachmentService.UpdateItem
func (c *AttachmentServiceClient) UpdateItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemResponse](ctx, c.cc, AttachmentServiceName, "UpdateItem", in, opts)
}

// DeleteItem calls AttachmentService.DeleteItem
func (c *AttachmentServiceClient) DeleteItem(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*DeleteAttachmentResponse, error) {
	return invoke[DeleteAttachmentResponse](ctx, c.cc, AttachmentServiceName, "DeleteItem", in, opts)
}

// ToggleEquipped calls AttachmentService.ToggleEquipped
func (c *AttachmentServiceClient) ToggleEquipped(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*ToggleEquippedResponse, error) {
	return invoke[ToggleEquippedResponse](ctx, c.cc, AttachmentServiceName, "ToggleEquipped", in, opts)
}

// CreateFeature calls AttachmentService.CreateFeature
func (c *AttachmentServiceClient) CreateFeature(ctx context.Context, in *FeatureRequest, opts ...grpc.CallOption) (*FeatureResponse, error) {
	return invoke[FeatureResponse](ctx, c.cc, AttachmentServiceName, "CreateFeature", in, opts)
}

// GetFeature calls AttachmentService.GetFeature
func (c *AttachmentServiceClient) GetFeature(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*FeatureResponse, error) {
	return invoke[FeatureResponse](ctx, c.cc, AttachmentServiceName, "GetFeature", in, opts)
}

// UpdateFeature calls AttachmentService.UpdateFeature
func (c *AttachmentServiceClient) UpdateFeature(ctx context.Context, in *FeatureRequest, opts ...grpc.CallOption) (*FeatureResponse, error) {
	return invoke[FeatureResponse](ctx, c.cc, AttachmentServiceName, "UpdateFeature", in, opts)
}

// DeleteFeature calls AttachmentService.DeleteFeature
func (c *AttachmentServiceClient) DeleteFeature(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*DeleteAttachmentResponse, error) {
	return invoke[DeleteAttachmentResponse](ctx, c.cc, AttachmentServiceName, "DeleteFeature", in, opts)
}

// CreateSpell calls AttachmentService.CreateSpell
func (c *AttachmentServiceClient) CreateSpell(ctx context.Context, in *SpellRequest, opts ...grpc.CallOption) (*SpellResponse, error) {
	return invoke[SpellResponse](ctx, c.cc, AttachmentServiceName, "CreateSpell", in, opts)
}

// GetSpell calls AttachmentService.GetSpell
func (c *AttachmentServiceClient) GetSpell(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*SpellResponse, error) {
	return invoke[SpellResponse](ctx, c.cc, AttachmentServiceName, "GetSpell", in, opts)
}

// UpdateSpell calls AttachmentService.UpdateSpell
func (c *AttachmentServiceClient) UpdateSpell(ctx context.Context, in *SpellRequest, opts ...grpc.CallOption) (*SpellResponse, error) {
	return invoke[SpellResponse](ctx, c.cc, AttachmentServiceName, "UpdateSpell", in, opts)
}

// DeleteSpell calls AttachmentService.DeleteSpell
func (c *AttachmentServiceClient) DeleteSpell(ctx context.Context, in *AttachmentRef, opts ...grpc.CallOption) (*DeleteAttachmentResponse, error) {
	return invoke[DeleteAttachmentResponse](ctx, c.cc, AttachmentServiceName, "DeleteSpell", in, opts)
}

// ToggleModifier calls AttachmentService.ToggleModifier
func (c *AttachmentServiceClient) ToggleModifier(ctx context.Context, in *ToggleModifierRequest, opts ...grpc.CallOption) (*ToggleModifierResponse, error) {
	return invoke[ToggleModifierResponse](ctx, c.cc, AttachmentServiceName, "ToggleModifier", in, opts)
}
