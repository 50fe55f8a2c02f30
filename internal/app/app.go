// Package app wires the stores, orchestrators and gRPC server together
package app

import (
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	sheetsv1alpha1 "github.com/KirkDiggler/rpg-sheets/internal/handlers/sheets/v1alpha1"
	accountorch "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/account"
	attachmentorch "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/attachment"
	"github.com/KirkDiggler/rpg-sheets/internal/orchestrators/bonus"
	characterorch "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheets/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/character"
	currencyrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/currency"
	featurerepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/feature"
	inventoryrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/inventory"
	sessionrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/session"
	spellrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/spell"
	userrepo "github.com/KirkDiggler/rpg-sheets/internal/repositories/user"
	"github.com/KirkDiggler/rpg-sheets/internal/services/account"
	"github.com/KirkDiggler/rpg-sheets/internal/services/attachment"
	"github.com/KirkDiggler/rpg-sheets/internal/services/character"
	"github.com/KirkDiggler/rpg-sheets/internal/stats"
)

// Config holds the shared resources the services are built on
type Config struct {
	DB    *database.DB
	Redis redis.Client

	// Optional
	Catalog    *stats.Catalog
	Clock      clock.Clock
	SessionTTL time.Duration
	BcryptCost int
	Logger     *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("DB")
	}
	if c.Redis == nil {
		vb.RequiredField("Redis")
	}
	return vb.Build()
}

// Services are the core services behind the gRPC surface
type Services struct {
	Accounts    account.Service
	Characters  character.Service
	Attachments attachment.Service
	logger      *zap.Logger
}

// New builds every repository and orchestrator
func New(cfg *Config) (*Services, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	users, err := userrepo.NewSQLite(&userrepo.Config{DB: cfg.DB, Clock: cfg.Clock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user repository")
	}
	sessions, err := sessionrepo.NewRedisRepository(&sessionrepo.Config{Client: cfg.Redis, Clock: cfg.Clock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session repository")
	}
	characters, err := characterrepo.NewSQLite(&characterrepo.Config{DB: cfg.DB, Clock: cfg.Clock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}
	currencies, err := currencyrepo.NewSQLite(&currencyrepo.Config{DB: cfg.DB})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create currency repository")
	}
	items, err := inventoryrepo.NewSQLite(&inventoryrepo.Config{DB: cfg.DB})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory repository")
	}
	features, err := featurerepo.NewSQLite(&featurerepo.Config{DB: cfg.DB})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create feature repository")
	}
	spells, err := spellrepo.NewSQLite(&spellrepo.Config{DB: cfg.DB})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell repository")
	}

	bonuses, err := bonus.NewOrchestrator(&bonus.Config{
		Items:    items,
		Features: features,
		Spells:   spells,
		Logger:   logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bonus orchestrator")
	}

	accounts, err := accountorch.New(&accountorch.Config{
		UserRepo:    users,
		SessionRepo: sessions,
		Clock:       cfg.Clock,
		SessionTTL:  cfg.SessionTTL,
		BcryptCost:  cfg.BcryptCost,
		Logger:      logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account orchestrator")
	}

	sheets, err := characterorch.New(&characterorch.Config{
		CharacterRepo: characters,
		CurrencyRepo:  currencies,
		InventoryRepo: items,
		FeatureRepo:   features,
		SpellRepo:     spells,
		Bonuses:       bonuses,
		Catalog:       cfg.Catalog,
		Logger:        logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	attachments, err := attachmentorch.New(&attachmentorch.Config{
		InventoryRepo: items,
		FeatureRepo:   features,
		SpellRepo:     spells,
		Logger:        logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create attachment orchestrator")
	}

	return &Services{
		Accounts:    accounts,
		Characters:  sheets,
		Attachments: attachments,
		logger:      logger,
	}, nil
}

// NewGRPCServer builds the gRPC server exposing s
func (s *Services) NewGRPCServer(opts ...grpc.ServerOption) (*grpc.Server, error) {
	return sheetsv1alpha1.NewServer(&sheetsv1alpha1.ServerConfig{
		AccountService:    s.Accounts,
		CharacterService:  s.Characters,
		AttachmentService: s.Attachments,
		Logger:            s.logger,
	}, opts...)
}
