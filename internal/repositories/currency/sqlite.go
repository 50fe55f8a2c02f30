package currency

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
)

const (
	currencyColumns = `id, character_id, name, abbreviation, amount, sort_order`

	getQuery  = `SELECT ` + currencyColumns + ` FROM currencies WHERE id = ?`
	listQuery = `SELECT ` + currencyColumns + ` FROM currencies WHERE character_id = ?
		ORDER BY sort_order, id`

	insertQuery = `INSERT INTO currencies (character_id, name, abbreviation, amount, sort_order)
		VALUES (?, ?, ?, 0,
			(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM currencies WHERE character_id = ?))`
	renameQuery = `UPDATE currencies SET name = ?, abbreviation = ? WHERE id = ?`
	adjustQuery = `UPDATE currencies SET amount = ? WHERE id = ?`
)

type sqliteRepository struct {
	db *database.DB
}

// Config contains configuration for the SQLite currency repository
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

// NewSQLite creates a new SQLite-backed currency repository
func NewSQLite(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

func validateName(name string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	return vb.Build()
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	var cur *entities.Currency
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, insertQuery,
			input.Scope.CharacterID, input.Name, input.Abbreviation, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to insert currency")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read currency id")
		}

		cur, err = get(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Currency: cur}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var currencies []*entities.Currency
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, listQuery, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to list currencies")
		}
		defer func() { _ = rows.Close() }()

		currencies = []*entities.Currency{}
		for rows.Next() {
			cur, err := scanCurrency(rows)
			if err != nil {
				return errors.Wrap(err, "failed to scan currency")
			}
			currencies = append(currencies, cur)
		}
		if err := rows.Err(); err != nil {
			return errors.Wrap(err, "failed to list currencies")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Currencies: currencies}, nil
}

func (r *sqliteRepository) Rename(ctx context.Context, input RenameInput) (*RenameOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	var cur *entities.Currency
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCurrency(ctx, tx, input.ID, input.Scope); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, renameQuery, input.Name, input.Abbreviation, input.ID); err != nil {
			return errors.Wrap(err, "failed to rename currency").WithMeta("currency_id", input.ID)
		}
		var err error
		cur, err = get(ctx, tx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &RenameOutput{Currency: cur}, nil
}

func (r *sqliteRepository) Adjust(ctx context.Context, input AdjustInput) (*AdjustOutput, error) {
	var amount int64
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCurrency(ctx, tx, input.ID, input.Scope); err != nil {
			return err
		}
		cur, err := get(ctx, tx, input.ID)
		if err != nil {
			return err
		}

		amount = entities.AdjustAmount(cur.Amount, input.Delta)
		if _, err := tx.ExecContext(ctx, adjustQuery, amount, input.ID); err != nil {
			return errors.Wrap(err, "failed to adjust currency").WithMeta("currency_id", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AdjustOutput{Amount: amount}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCurrency(ctx, tx, input.ID, input.Scope); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM currencies WHERE id = ?`, input.ID); err != nil {
			return errors.Wrap(err, "failed to delete currency").WithMeta("currency_id", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func get(ctx context.Context, q database.Querier, id int64) (*entities.Currency, error) {
	cur, err := scanCurrency(q.QueryRowContext(ctx, getQuery, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("currency not found").WithMeta("currency_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get currency").WithMeta("currency_id", id)
	}
	return cur, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCurrency(row scanner) (*entities.Currency, error) {
	var c entities.Currency
	if err := row.Scan(&c.ID, &c.CharacterID, &c.Name, &c.Abbreviation, &c.Amount, &c.SortOrder); err != nil {
		return nil, err
	}
	return &c, nil
}
