package v1alpha1

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/account"
)

const authScheme = "bearer"

// publicMethods can be called without a session
var publicMethods = map[string]struct{}{
	fullMethodName(AccountServiceName, "Register"):          {},
	fullMethodName(AccountServiceName, "Login"):             {},
	fullMethodName(CharacterServiceName, "ListStatOptions"): {},
}

type sessionKey struct{}

type session struct {
	actor entities.Actor
	token string
}

// ContextWithSession stores the authenticated actor and its token on ctx
func ContextWithSession(ctx context.Context, actor entities.Actor, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, session{actor: actor, token: token})
}

// ActorFromContext returns the actor stored by the auth interceptor
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	s, ok := ctx.Value(sessionKey{}).(session)
	return s.actor, ok
}

func tokenFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(sessionKey{}).(session)
	return s.token, ok
}

// WithToken attaches a session token to an outgoing client context
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", authScheme+" "+token)
}

// AuthFunc resolves the bearer token of an incoming call into an actor
func AuthFunc(accounts account.Service) auth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		token, err := auth.AuthFromMD(ctx, authScheme)
		if err != nil {
			return nil, err
		}

		out, err := accounts.Authenticate(ctx, &account.AuthenticateInput{Token: token})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}

		return ContextWithSession(ctx, out.Actor, token), nil
	}
}

// RequiresAuth selects the sheet service calls that need a session. Health
// and reflection are left open.
func RequiresAuth(_ context.Context, callMeta interceptors.CallMeta) bool {
	if !strings.HasPrefix(callMeta.Service, Package+".") {
		return false
	}
	_, public := publicMethods[callMeta.FullMethod()]
	return !public
}

func actorFrom(ctx context.Context) (entities.Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return entities.Actor{}, errors.ToGRPCError(errors.Unauthenticated("no session"))
	}
	return actor, nil
}
