package feature

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/modifier"
)

const (
	featureColumns = `id, character_id, name, description, source, sort_order`

	getQuery  = `SELECT ` + featureColumns + ` FROM features WHERE id = ?`
	listQuery = `SELECT ` + featureColumns + ` FROM features WHERE character_id = ?
		ORDER BY sort_order, name`

	insertQuery = `INSERT INTO features (character_id, name, description, source, sort_order)
		VALUES (?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM features WHERE character_id = ?))`
	updateQuery = `UPDATE features SET name = ?, description = ?, source = ? WHERE id = ?`
)

type sqliteRepository struct {
	db        *database.DB
	modifiers *modifier.Store
}

// Config contains configuration for the SQLite feature repository
type Config struct {
	DB *database.DB
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("database cannot be nil")
	}
	return nil
}

// NewSQLite creates a new SQLite-backed feature repository
func NewSQLite(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := modifier.NewStore(entities.KindFeature)
	if err != nil {
		return nil, err
	}

	return &sqliteRepository{
		db:        cfg.DB,
		modifiers: store,
	}, nil
}

func validateFeature(f *entities.Feature) error {
	if f == nil {
		return errors.InvalidArgument("feature cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", f.Name, vb)
	return vb.Build()
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateFeature(input.Feature); err != nil {
		return nil, err
	}

	var f *entities.Feature
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		in := input.Feature
		res, err := tx.ExecContext(ctx, insertQuery,
			input.Scope.CharacterID, in.Name, in.Description, in.Source, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to insert feature")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read feature id")
		}

		if _, err := r.modifiers.Insert(ctx, tx, id, in.Modifiers); err != nil {
			return err
		}

		f, err = r.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Feature: f}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	var f *entities.Feature
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindFeature, input.ID, input.Scope); err != nil {
			return err
		}
		var err error
		f, err = r.load(ctx, tx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Feature: f}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var features []*entities.Feature
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, listQuery, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to list features")
		}
		defer func() { _ = rows.Close() }()

		features = []*entities.Feature{}
		for rows.Next() {
			f, err := scanFeature(rows)
			if err != nil {
				return errors.Wrap(err, "failed to scan feature")
			}
			features = append(features, f)
		}
		if err := rows.Err(); err != nil {
			return errors.Wrap(err, "failed to list features")
		}
		_ = rows.Close()

		mods, err := r.modifiers.ListByCharacter(ctx, tx, input.Scope.CharacterID)
		if err != nil {
			return err
		}
		for _, f := range features {
			f.Modifiers = mods[f.ID]
			if f.Modifiers == nil {
				f.Modifiers = []entities.StatModifier{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Features: features}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateFeature(input.Feature); err != nil {
		return nil, err
	}

	var f *entities.Feature
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		in := input.Feature
		if err := ownership.CheckAttachment(ctx, tx, entities.KindFeature, in.ID, input.Scope); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, updateQuery, in.Name, in.Description, in.Source, in.ID); err != nil {
			return errors.Wrap(err, "failed to update feature").WithMeta("feature_id", in.ID)
		}

		if _, err := r.modifiers.Replace(ctx, tx, in.ID, in.Modifiers); err != nil {
			return err
		}

		var err error
		f, err = r.load(ctx, tx, in.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Feature: f}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindFeature, input.ID, input.Scope); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM features WHERE id = ?`, input.ID); err != nil {
			return errors.Wrap(err, "failed to delete feature").WithMeta("feature_id", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ToggleModifier(ctx context.Context, input ToggleModifierInput) (*ToggleModifierOutput, error) {
	var enabled bool
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckModifier(ctx, tx, entities.KindFeature, input.ModifierID, input.Scope); err != nil {
			return err
		}
		var err error
		enabled, err = r.modifiers.Toggle(ctx, tx, input.ModifierID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ToggleModifierOutput{Enabled: enabled}, nil
}

func (r *sqliteRepository) SumBonuses(ctx context.Context, characterID int64) (entities.Bonuses, error) {
	return r.modifiers.Sum(ctx, r.db, characterID)
}

func (r *sqliteRepository) load(ctx context.Context, q database.Querier, id int64) (*entities.Feature, error) {
	f, err := scanFeature(q.QueryRowContext(ctx, getQuery, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("feature not found").WithMeta("feature_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get feature").WithMeta("feature_id", id)
	}

	f.Modifiers, err = r.modifiers.List(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFeature(row scanner) (*entities.Feature, error) {
	var f entities.Feature
	if err := row.Scan(&f.ID, &f.CharacterID, &f.Name, &f.Description, &f.Source, &f.SortOrder); err != nil {
		return nil, err
	}
	return &f, nil
}
