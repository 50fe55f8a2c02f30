package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-sheets/internal/pkg/jsoncodec"
)

// Package is the gRPC package every sheet service is registered under
const Package = "sheets.v1alpha1"

// Service names
const (
	AccountServiceName    = Package + ".AccountService"
	CharacterServiceName  = Package + ".CharacterService"
	AttachmentServiceName = Package + ".AttachmentService"
)

// AccountServiceServer is the server API for the account service
type AccountServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	WhoAmI(context.Context, *WhoAmIRequest) (*WhoAmIResponse, error)
	SetDisplayPreference(context.Context, *SetDisplayPreferenceRequest) (*SetDisplayPreferenceResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	SetAdmin(context.Context, *SetAdminRequest) (*SetAdminResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
}

// CharacterServiceServer is the server API for the character service
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	GetSheet(context.Context, *GetSheetRequest) (*GetSheetResponse, error)
	UpdateCharacter(context.Context, *UpdateCharacterRequest) (*UpdateCharacterResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	GetBonuses(context.Context, *GetBonusesRequest) (*GetBonusesResponse, error)
	ListStatOptions(context.Context, *ListStatOptionsRequest) (*ListStatOptionsResponse, error)
	AddCurrency(context.Context, *AddCurrencyRequest) (*CurrencyResponse, error)
	RenameCurrency(context.Context, *RenameCurrencyRequest) (*CurrencyResponse, error)
	AdjustCurrency(context.Context, *AdjustCurrencyRequest) (*AdjustCurrencyResponse, error)
	DeleteCurrency(context.Context, *DeleteCurrencyRequest) (*DeleteCurrencyResponse, error)
}

// AttachmentServiceServer is the server API for the attachment service
type AttachmentServiceServer interface {
	CreateItem(context.Context, *ItemRequest) (*ItemResponse, error)
	GetItem(context.Context, *AttachmentRef) (*ItemResponse, error)
	UpdateItem(context.Context, *ItemRequest) (*ItemResponse, error)
	DeleteItem(context.Context, *AttachmentRef) (*DeleteAttachmentResponse, error)
	ToggleEquipped(context.Context, *AttachmentRef) (*ToggleEquippedResponse, error)

	CreateFeature(context.Context, *FeatureRequest) (*FeatureResponse, error)
	GetFeature(context.Context, *AttachmentRef) (*FeatureResponse, error)
	UpdateFeature(context.Context, *FeatureRequest) (*FeatureResponse, error)
	DeleteFeature(context.Context, *AttachmentRef) (*DeleteAttachmentResponse, error)

	CreateSpell(context.Context, *SpellRequest) (*SpellResponse, error)
	GetSpell(context.Context, *AttachmentRef) (*SpellResponse, error)
	UpdateSpell(context.Context, *SpellRequest) (*SpellResponse, error)
	DeleteSpell(context.Context, *AttachmentRef) (*DeleteAttachmentResponse, error)

	ToggleModifier(context.Context, *ToggleModifierRequest) (*ToggleModifierResponse, error)
}

// AccountServiceDesc describes the account service for grpc.Server.RegisterService
var AccountServiceDesc = grpc.ServiceDesc{
	ServiceName: AccountServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(AccountServiceName, "Register", AccountServiceServer.Register),
		unaryMethod(AccountServiceName, "Login", AccountServiceServer.Login),
		unaryMethod(AccountServiceName, "Logout", AccountServiceServer.Logout),
		unaryMethod(AccountServiceName, "WhoAmI", AccountServiceServer.WhoAmI),
		unaryMethod(AccountServiceName, "SetDisplayPreference", AccountServiceServer.SetDisplayPreference),
		unaryMethod(AccountServiceName, "ListUsers", AccountServiceServer.ListUsers),
		unaryMethod(AccountServiceName, "SetAdmin", AccountServiceServer.SetAdmin),
		unaryMethod(AccountServiceName, "DeleteUser", AccountServiceServer.DeleteUser),
	},
	Streams: []grpc.StreamDesc{},
}

// CharacterServiceDesc describes the character service for grpc.Server.RegisterService
var CharacterServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(CharacterServiceName, "CreateCharacter", CharacterServiceServer.CreateCharacter),
		unaryMethod(CharacterServiceName, "ListCharacters", CharacterServiceServer.ListCharacters),
		unaryMethod(CharacterServiceName, "GetSheet", CharacterServiceServer.GetSheet),
		unaryMethod(CharacterServiceName, "UpdateCharacter", CharacterServiceServer.UpdateCharacter),
		unaryMethod(CharacterServiceName, "DeleteCharacter", CharacterServiceServer.DeleteCharacter),
		unaryMethod(CharacterServiceName, "GetBonuses", CharacterServiceServer.GetBonuses),
		unaryMethod(CharacterServiceName, "ListStatOptions", CharacterServiceServer.ListStatOptions),
		unaryMethod(CharacterServiceName, "AddCurrency", CharacterServiceServer.AddCurrency),
		unaryMethod(CharacterServiceName, "RenameCurrency", CharacterServiceServer.RenameCurrency),
		unaryMethod(CharacterServiceName, "AdjustCurrency", CharacterServiceServer.AdjustCurrency),
		unaryMethod(CharacterServiceName, "DeleteCurrency", CharacterServiceServer.DeleteCurrency),
	},
	Streams: []grpc.StreamDesc{},
}

// AttachmentServiceDesc describes the attachment service for grpc.Server.RegisterService
var AttachmentServiceDesc = grpc.ServiceDesc{
	ServiceName: AttachmentServiceName,
	HandlerType: (*AttachmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(AttachmentServiceName, "CreateItem", AttachmentServiceServer.CreateItem),
		unaryMethod(AttachmentServiceName, "GetItem", AttachmentServiceServer.GetItem),
		unaryMethod(AttachmentServiceName, "UpdateItem", AttachmentServiceServer.UpdateItem),
		unaryMethod(AttachmentServiceName, "DeleteItem", AttachmentServiceServer.DeleteItem),
		unaryMethod(AttachmentServiceName, "ToggleEquipped", AttachmentServiceServer.ToggleEquipped),
		unaryMethod(AttachmentServiceName, "CreateFeature", AttachmentServiceServer.CreateFeature),
		unaryMethod(AttachmentServiceName, "GetFeature", AttachmentServiceServer.GetFeature),
		unaryMethod(AttachmentServiceName, "UpdateFeature", AttachmentServiceServer.UpdateFeature),
		unaryMethod(AttachmentServiceName, "DeleteFeature", AttachmentServiceServer.DeleteFeature),
		unaryMethod(AttachmentServiceName, "CreateSpell", AttachmentServiceServer.CreateSpell),
		unaryMethod(AttachmentServiceName, "GetSpell", AttachmentServiceServer.GetSpell),
		unaryMethod(AttachmentServiceName, "UpdateSpell", AttachmentServiceServer.UpdateSpell),
		unaryMethod(AttachmentServiceName, "DeleteSpell", AttachmentServiceServer.DeleteSpell),
		unaryMethod(AttachmentServiceName, "ToggleModifier", AttachmentServiceServer.ToggleModifier),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAccountServiceServer registers srv on s
func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountServiceDesc, srv)
}

// RegisterCharacterServiceServer registers srv on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterServiceDesc, srv)
}

// RegisterAttachmentServiceServer registers srv on s
func RegisterAttachmentServiceServer(s grpc.ServiceRegistrar, srv AttachmentServiceServer) {
	s.RegisterService(&AttachmentServiceDesc, srv)
}

func fullMethodName(service, method string) string {
	return "/" + service + "/" + method
}

// unaryMethod builds the method descriptor that protoc-gen-go-grpc would
// generate for call, a method expression on the server interface.
func unaryMethod[S any, Req any, Resp any](
	service, method string,
	call func(S, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := fullMethodName(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, handler)
		},
	}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	service, method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := cc.Invoke(ctx, fullMethodName(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
