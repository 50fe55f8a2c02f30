package v1alpha1

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/logging"
	"github.com/KirkDiggler/rpg-sheets/internal/services/account"
	"github.com/KirkDiggler/rpg-sheets/internal/services/attachment"
	"github.com/KirkDiggler/rpg-sheets/internal/services/character"
)

// ServerConfig holds the services exposed over gRPC
type ServerConfig struct {
	AccountService    account.Service
	CharacterService  character.Service
	AttachmentService attachment.Service
	Logger            *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *ServerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.AccountService == nil {
		vb.RequiredField("AccountService")
	}
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.AttachmentService == nil {
		vb.RequiredField("AttachmentService")
	}
	return vb.Build()
}

// NewServer builds a gRPC server with the sheet services, health and
// reflection registered. Calls are logged, panics become Internal, and every
// non-public sheet call must carry a bearer session token.
func NewServer(cfg *ServerConfig, opts ...grpc.ServerOption) (*grpc.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	accountHandler, err := NewAccountHandler(&AccountHandlerConfig{AccountService: cfg.AccountService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account handler")
	}
	characterHandler, err := NewCharacterHandler(&CharacterHandlerConfig{CharacterService: cfg.CharacterService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character handler")
	}
	attachmentHandler, err := NewAttachmentHandler(&AttachmentHandlerConfig{AttachmentService: cfg.AttachmentService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create attachment handler")
	}

	recoveryHandler := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", zap.Any("panic", p), zap.Stack("stack"))
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	opts = append(opts, grpc.ChainUnaryInterceptor(
		grpc_logging.UnaryServerInterceptor(
			logging.InterceptorLogger(logger),
			grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
		),
		grpc_recovery.UnaryServerInterceptor(recoveryHandler),
		selector.UnaryServerInterceptor(
			auth.UnaryServerInterceptor(AuthFunc(cfg.AccountService)),
			selector.MatchFunc(RequiresAuth),
		),
	))
	srv := grpc.NewServer(opts...)

	RegisterAccountServiceServer(srv, accountHandler)
	RegisterCharacterServiceServer(srv, characterHandler)
	RegisterAttachmentServiceServer(srv, attachmentHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{AccountServiceName, CharacterServiceName, AttachmentServiceName} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	return srv, nil
}
