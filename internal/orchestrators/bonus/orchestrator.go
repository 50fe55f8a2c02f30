// Package bonus computes a character's net stat bonuses from the enabled
// modifiers of its equipped items, features and spells. Nothing is cached:
// every call reads the current store state.
package bonus

//go:generate mockgen -destination=mock/mock_service.go -package=bonusmock github.com/KirkDiggler/rpg-sheets/internal/orchestrators/bonus Service,Source

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// Source yields one collection's grouped bonus sums for a character
type Source interface {
	SumBonuses(ctx context.Context, characterID int64) (entities.Bonuses, error)
}

// Service defines the interface for bonus aggregation
type Service interface {
	// Aggregate merges the bonus sums of every source. Callers must have
	// checked that the actor owns the character.
	Aggregate(ctx context.Context, input *AggregateInput) (*AggregateOutput, error)
}

// AggregateInput identifies the character to aggregate
type AggregateInput struct {
	CharacterID int64
}

// AggregateOutput holds the merged bonuses. A stat absent from the map has
// a bonus of zero.
type AggregateOutput struct {
	Bonuses entities.Bonuses
}

// Config holds the dependencies for the bonus orchestrator
type Config struct {
	Items    Source
	Features Source
	Spells   Source
	Logger   *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Features == nil {
		vb.RequiredField("Features")
	}
	if c.Spells == nil {
		vb.RequiredField("Spells")
	}
	return vb.Build()
}

type namedSource struct {
	kind   entities.AttachmentKind
	source Source
}

type orchestrator struct {
	sources []namedSource
	logger  *zap.Logger
}

// NewOrchestrator creates a new bonus orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		sources: []namedSource{
			{kind: entities.KindItem, source: cfg.Items},
			{kind: entities.KindFeature, source: cfg.Features},
			{kind: entities.KindSpell, source: cfg.Spells},
		},
		logger: logger.Named("bonus"),
	}, nil
}

func (o *orchestrator) Aggregate(ctx context.Context, input *AggregateInput) (*AggregateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID <= 0 {
		return nil, errors.InvalidArgument("character ID must be positive")
	}

	partials := make([]entities.Bonuses, 0, len(o.sources))
	for _, src := range o.sources {
		b, err := src.source.SumBonuses(ctx, input.CharacterID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sum %s bonuses", src.kind).
				WithMeta("character_id", input.CharacterID)
		}
		partials = append(partials, b)
	}

	total := entities.MergeBonuses(partials...)
	o.logger.Debug("aggregated bonuses",
		zap.Int64("character_id", input.CharacterID),
		zap.Int("stats", len(total)))

	return &AggregateOutput{Bonuses: total}, nil
}
