package inventory

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
	itemColumns = `id, character_id, name, description, location, quantity, equipped, sort_order`

	getQuery  = `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = ?`
	listQuery = `SELECT ` + itemColumns + ` FROM inventory_items WHERE character_id = ?
		ORDER BY equipped DESC, sort_order, name`

	insertQuery = `INSERT INTO inventory_items
		(character_id, name, description, location, quantity, equipped, sort_order)
		VALUES (?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM inventory_items WHERE character_id = ?))`
	updateQuery = `UPDATE inventory_items
		SET name = ?, description = ?, location = ?, quantity = ? WHERE id = ?`
	toggleQuery = `UPDATE inventory_items SET equipped = 1 - equipped WHERE id = ? RETURNING equipped`
)

type sqliteRepository struct {
	db        *database.DB
	modifiers *modifier.Store
}

// Config contains configuration for the SQLite inventory repository
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

// NewSQLite creates a new SQLite-backed inventory repository
func NewSQLite(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := modifier.NewStore(entities.KindItem)
	if err != nil {
		return nil, err
	}

	return &sqliteRepository{
		db:        cfg.DB,
		modifiers: store,
	}, nil
}

func validateItem(item *entities.InventoryItem) error {
	if item == nil {
		return errors.InvalidArgument("item cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", item.Name, vb)
	return vb.Build()
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	var item *entities.InventoryItem
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		in := input.Item
		res, err := tx.ExecContext(ctx, insertQuery,
			input.Scope.CharacterID, in.Name, in.Description, in.Location, quantityValue(in.Quantity),
			in.Equipped, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to insert item")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read item id")
		}

		if _, err := r.modifiers.Insert(ctx, tx, id, in.Modifiers); err != nil {
			return err
		}

		item, err = r.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Item: item}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	var item *entities.InventoryItem
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindItem, input.ID, input.Scope); err != nil {
			return err
		}
		var err error
		item, err = r.load(ctx, tx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Item: item}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var items []*entities.InventoryItem
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckCharacter(ctx, tx, input.Scope); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, listQuery, input.Scope.CharacterID)
		if err != nil {
			return errors.Wrap(err, "failed to list items")
		}
		defer func() { _ = rows.Close() }()

		items = []*entities.InventoryItem{}
		for rows.Next() {
			item, err := scanItem(rows)
			if err != nil {
				return errors.Wrap(err, "failed to scan item")
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			return errors.Wrap(err, "failed to list items")
		}
		_ = rows.Close()

		mods, err := r.modifiers.ListByCharacter(ctx, tx, input.Scope.CharacterID)
		if err != nil {
			return err
		}
		for _, item := range items {
			item.Modifiers = orEmpty(mods[item.ID])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Items: items}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	var item *entities.InventoryItem
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		in := input.Item
		if err := ownership.CheckAttachment(ctx, tx, entities.KindItem, in.ID, input.Scope); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, updateQuery,
			in.Name, in.Description, in.Location, quantityValue(in.Quantity), in.ID)
		if err != nil {
			return errors.Wrap(err, "failed to update item").WithMeta("item_id", in.ID)
		}

		if _, err := r.modifiers.Replace(ctx, tx, in.ID, in.Modifiers); err != nil {
			return err
		}

		item, err = r.load(ctx, tx, in.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Item: item}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindItem, input.ID, input.Scope); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, input.ID); err != nil {
			return errors.Wrap(err, "failed to delete item").WithMeta("item_id", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ToggleEquipped(ctx context.Context, input ToggleEquippedInput) (*ToggleEquippedOutput, error) {
	var equipped bool
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckAttachment(ctx, tx, entities.KindItem, input.ID, input.Scope); err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx, toggleQuery, input.ID).Scan(&equipped); err != nil {
			return errors.Wrap(err, "failed to toggle equipped").WithMeta("item_id", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ToggleEquippedOutput{Equipped: equipped}, nil
}

func (r *sqliteRepository) ToggleModifier(ctx context.Context, input ToggleModifierInput) (*ToggleModifierOutput, error) {
	var enabled bool
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		if err := ownership.CheckModifier(ctx, tx, entities.KindItem, input.ModifierID, input.Scope); err != nil {
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

func (r *sqliteRepository) load(ctx context.Context, q database.Querier, id int64) (*entities.InventoryItem, error) {
	item, err := scanItem(q.QueryRowContext(ctx, getQuery, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("item not found").WithMeta("item_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item").WithMeta("item_id", id)
	}

	item.Modifiers, err = r.modifiers.List(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*entities.InventoryItem, error) {
	var (
		item     entities.InventoryItem
		quantity sql.NullInt64
	)
	err := row.Scan(&item.ID, &item.CharacterID, &item.Name, &item.Description,
		&item.Location, &quantity, &item.Equipped, &item.SortOrder)
	if err != nil {
		return nil, err
	}
	if quantity.Valid {
		q := int(quantity.Int64)
		item.Quantity = &q
	}
	return &item, nil
}

func quantityValue(q *int) any {
	if q == nil {
		return nil
	}
	return *q
}

func orEmpty(mods []entities.StatModifier) []entities.StatModifier {
	if mods == nil {
		return []entities.StatModifier{}
	}
	return mods
}
