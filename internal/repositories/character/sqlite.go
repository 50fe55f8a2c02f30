package character

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/ownership"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
)

const errOwnerIDInvalid = "owner ID must be positive"

// Statements are assembled once from the editable field allow-list, so no
// request data ever reaches the SQL text.
var (
	sheetColumns = func() []string {
		fields := entities.CharacterFields()
		cols := make([]string, len(fields))
		for i, f := range fields {
			cols[i] = string(f)
		}
		return cols
	}()

	selectColumns = "id, user_id, " + strings.Join(sheetColumns, ", ") + ", created_at, updated_at"

	getQuery  = `SELECT ` + selectColumns + ` FROM characters WHERE id = ? AND user_id = ?`
	listQuery = `SELECT ` + selectColumns + ` FROM characters WHERE user_id = ? ORDER BY name, id`

	insertQuery = `INSERT INTO characters (user_id, ` + strings.Join(sheetColumns, ", ") +
		`, created_at, updated_at) VALUES (?` + strings.Repeat(", ?", len(sheetColumns)+2) + `)`

	updateQuery = `UPDATE characters SET ` + strings.Join(sheetColumns, " = ?, ") +
		` = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	insertCurrencyQuery = `INSERT INTO currencies (character_id, name, abbreviation, amount, sort_order)
		VALUES (?, ?, ?, ?, ?)`
)

type sqliteRepository struct {
	db    *database.DB
	clock clock.Clock
}

// Config contains configuration for the SQLite character repository
type Config struct {
	DB    *database.DB
	Clock clock.Clock
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

// NewSQLite creates a new SQLite-backed character repository
func NewSQLite(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.OwnerID <= 0 {
		return nil, errors.InvalidArgument(errOwnerIDInvalid)
	}

	now := database.FromMillis(database.ToMillis(r.clock.Now()))
	c := entities.NewCharacter(input.OwnerID)
	c.CreatedAt = now
	c.UpdatedAt = now

	var currencies []*entities.Currency
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		args := append([]any{c.OwnerID}, fieldValues(c)...)
		args = append(args, database.ToMillis(now), database.ToMillis(now))

		res, err := tx.ExecContext(ctx, insertQuery, args...)
		if err != nil {
			if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
				return errors.NotFound("owner not found").WithMeta("owner_id", input.OwnerID)
			}
			return errors.Wrap(err, "failed to insert character")
		}
		if c.ID, err = res.LastInsertId(); err != nil {
			return errors.Wrap(err, "failed to read character id")
		}

		for _, starter := range entities.StarterCurrencies() {
			cur := starter
			cur.CharacterID = c.ID
			res, err := tx.ExecContext(ctx, insertCurrencyQuery,
				cur.CharacterID, cur.Name, cur.Abbreviation, cur.Amount, cur.SortOrder)
			if err != nil {
				return errors.Wrap(err, "failed to insert starter currency").
					WithMeta("currency", cur.Name)
			}
			if cur.ID, err = res.LastInsertId(); err != nil {
				return errors.Wrap(err, "failed to read currency id")
			}
			currencies = append(currencies, &cur)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Character: c, Currencies: currencies}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := input.Scope.Validate(); err != nil {
		return nil, err
	}

	c, err := r.get(ctx, r.db, input.Scope)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *sqliteRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID <= 0 {
		return nil, errors.InvalidArgument(errOwnerIDInvalid)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, input.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters").WithMeta("owner_id", input.OwnerID)
	}
	defer func() { _ = rows.Close() }()

	characters := []*entities.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListByOwnerOutput{Characters: characters}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := input.Scope.Validate(); err != nil {
		return nil, err
	}
	if input.Patch == nil {
		return nil, errors.InvalidArgument("patch cannot be nil")
	}

	var c *entities.Character
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		var err error
		c, err = r.get(ctx, tx, input.Scope)
		if err != nil {
			return err
		}

		input.Patch.Apply(c)
		c.UpdatedAt = database.FromMillis(database.ToMillis(r.clock.Now()))

		args := append(fieldValues(c), database.ToMillis(c.UpdatedAt), c.ID, c.OwnerID)
		if _, err := tx.ExecContext(ctx, updateQuery, args...); err != nil {
			return errors.Wrap(err, "failed to update character").WithMeta("character_id", c.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: c}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := input.Scope.Validate(); err != nil {
		return nil, err
	}

	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to delete character").
				WithMeta("character_id", input.Scope.CharacterID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) get(ctx context.Context, q database.Querier, scope ownership.Scope) (*entities.Character, error) {
	row := q.QueryRowContext(ctx, getQuery, scope.CharacterID, scope.UserID)
	c, err := scanCharacter(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("character not found").WithMeta("character_id", scope.CharacterID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character").WithMeta("character_id", scope.CharacterID)
	}
	return c, nil
}

func fieldValues(c *entities.Character) []any {
	fields := entities.CharacterFields()
	values := make([]any, len(fields))
	for i, f := range fields {
		switch v := c.FieldPointer(f).(type) {
		case *string:
			values[i] = *v
		case *int:
			values[i] = *v
		case *bool:
			values[i] = *v
		}
	}
	return values
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row scanner) (*entities.Character, error) {
	var (
		c                    entities.Character
		createdAt, updatedAt int64
	)

	fields := entities.CharacterFields()
	dest := make([]any, 0, len(fields)+4)
	dest = append(dest, &c.ID, &c.OwnerID)
	for _, f := range fields {
		dest = append(dest, c.FieldPointer(f))
	}
	dest = append(dest, &createdAt, &updatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.CreatedAt = database.FromMillis(createdAt)
	c.UpdatedAt = database.FromMillis(updatedAt)
	return &c, nil
}
