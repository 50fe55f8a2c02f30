package spell

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
	spellColumns = `id, character_id, name, description, level, sort_order`

	getQuery  = `SELECT ` + spellColumns + ` FROM spells WHERE id = ?`
	listQuery = `SELECT ` + spellColumns + ` FROM spells WHERE character_id = ?
		ORDER BY level, sort_order, name`

	insertQuery = `INSERT INTO spells (character_id, name, description, level, sort_order)
		VALUES (?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM spells WHERE character_id = ?))`
	updateQuery = `UPDATE spells SET name = ?, description = ?, level = ? WHERE id = ?`
)

type sqliteRepository struct {
	db        *database.DB
	modifiers *modifier.Store
}

// Config contains configuration for the SQLite spell repository
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

// NewSQLite creates a new SQLite-backed spell repository
func NewSQLite(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := modifier.NewStore(entities.KindSpell)
	if err != nil {
		return nil, err
	}

	return &sqliteRepository{
		db:        cfg.DB,
		modifiers: store,
	}, nil
}

func validateSpell(s *entities.Spell) error {
	if s == nil {
		return errors.InvalidArgument("spell cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", s.Name, vb)
	return vb.Build()
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	var s *entities.Spell
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		in := input.Spell
		res, err := tx.ExecContext(ctx, insertQuery,
			input.Scope.CharacterID, in.Name, in.Description, entities.ClampSpellLevel(in.Level),
			input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to insert spell")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read spell id")
		}

		if _, err := r.modifiers.Insert(ctx, tx, id, in.Modifiers); err != nil {
			return err
		}

		s, err = r.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Spell: s}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	var s *entities.Spell
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindSpell, input.ID, input.Scope); err != nil {
			return err
		}
		var err error
		s, err = r.load(ctx, tx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Spell: s}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var spells []*entities.Spell
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, listQuery, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to list spells")
		}
		defer func() { _ = rows.Close() }()

		spells = []*entities.Spell{}
		for rows.Next() {
			s, err := scanSpell(rows)
			if err != nil {
				return errors.Wrap(err, "failed to scan spell")
			}
			spells = append(spells, s)
		}
		if err := rows.Err(); err != nil {
			return errors.Wrap(err, "failed to list spells")
		}
		_ = rows.Close()

		mods, err := r.modifiers.ListByCharacter(ctx, tx, input.Scope.CharacterID)
		if err != nil {
			return err
		}
		for _, s := range spells {
			s.Modifiers = mods[s.ID]
			if s.Modifiers == nil {
				s.Modifiers = []entities.StatModifier{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Spells: spells}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	var s *entities.Spell
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		in := input.Spell
		if err := ownership.CheckAttachment(ctx, tx, entities.KindSpell, in.ID, input.Scope); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, updateQuery,
			in.Name, in.Description, entities.ClampSpellLevel(in.Level), in.ID)
		if err != nil {
			return errors.Wrap(err, "failed to update spell").WithMeta("spell_id", in.ID)
		}

		if _, err := r.modifiers.Replace(ctx, tx, in.ID, in.Modifiers); err != nil {
			return err
		}

		s, err = r.load(ctx, tx, in.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Spell: s}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindSpell, input.ID, input.Scope); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM spells WHERE id = ?`, input.ID); err != nil {
			return errors.Wrap(err, "failed to delete spell").WithMeta("spell_id", input.ID)
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
		if err := ownership.CheckModifier(ctx, tx, entities.KindSpell, input.ModifierID, input.Scope); err != nil {
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

func (r *sqliteRepository) load(ctx context.Context, q database.Querier, id int64) (*entities.Spell, error) {
	s, err := scanSpell(q.QueryRowContext(ctx, getQuery, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("spell not found").WithMeta("spell_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get spell").WithMeta("spell_id", id)
	}

	s.Modifiers, err = r.modifiers.List(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSpell(row scanner) (*entities.Spell, error) {
	var s entities.Spell
	if err := row.Scan(&s.ID, &s.CharacterID, &s.Name, &s.Description, &s.Level, &s.SortOrder); err != nil {
		return nil, err
	}
	return &s, nil
}
