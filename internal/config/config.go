// Package config loads server settings from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RPG_SHEETS_"

// Config holds the server settings
type Config struct {
	GRPCPort     int    `env:"GRPC_PORT" envDefault:"50051"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"rpg-sheets.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisTLS      bool   `env:"REDIS_TLS" envDefault:"false"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// StatOptionsFile replaces the built-in stat catalog when set
	StatOptionsFile string `env:"STAT_OPTIONS_FILE"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom parses the given variables instead of the process environment.
// Keys include the prefix.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field("GRPC_PORT", "must be between 1 and 65535")
	}
	errors.ValidateRequired("DATABASE_PATH", c.DatabasePath, vb)
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	if c.SessionTTL <= 0 {
		vb.Field("SESSION_TTL", "must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		vb.Fieldf("BCRYPT_COST", "must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	errors.ValidateEnum("LOG_LEVEL", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", c.LogFormat, []string{"json", "console"}, vb)

	return vb.Build()
}
