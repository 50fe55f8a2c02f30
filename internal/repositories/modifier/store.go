// Package modifier stores the stat modifiers hanging off inventory items,
// features and spells. The attachment repositories share it and pass in
// the transaction they are running on.
package modifier

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// Store reads and writes the modifier table of one attachment kind
type Store struct {
	kind   entities.AttachmentKind
	tables database.AttachmentTables
	// activeFilter restricts bonus sums to attachments that currently grant
	// their modifiers
	activeFilter string

	insertQuery string
	deleteQuery string
	listQuery   string
	listByChar  string
	toggleQuery string
	sumQuery    string
}

// NewStore builds the store for kind
func NewStore(kind entities.AttachmentKind) (*Store, error) {
	tables, err := database.TablesFor(kind)
	if err != nil {
		return nil, err
	}

	s := &Store{kind: kind, tables: tables}
	if kind == entities.KindItem {
		s.activeFilter = " AND a.equipped = 1"
	}

	s.insertQuery = fmt.Sprintf(
		`INSERT INTO %s (%s, stat_modified, value, enabled) VALUES (?, ?, ?, ?)`,
		tables.Modifiers, tables.ForeignKey)
	s.deleteQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, tables.Modifiers, tables.ForeignKey)
	s.listQuery = fmt.Sprintf(
		`SELECT id, %s, stat_modified, value, enabled FROM %s WHERE %s = ? ORDER BY id`,
		tables.ForeignKey, tables.Modifiers, tables.ForeignKey)
	s.listByChar = fmt.Sprintf(
		`SELECT p.id, p.%s, p.stat_modified, p.value, p.enabled
		FROM %s p JOIN %s a ON a.id = p.%s
		WHERE a.character_id = ? ORDER BY p.id`,
		tables.ForeignKey, tables.Modifiers, tables.Attachments, tables.ForeignKey)
	s.toggleQuery = fmt.Sprintf(
		`UPDATE %s SET enabled = 1 - enabled WHERE id = ? RETURNING enabled`, tables.Modifiers)
	s.sumQuery = fmt.Sprintf(
		`SELECT p.stat_modified, SUM(p.value)
		FROM %s p JOIN %s a ON a.id = p.%s
		WHERE a.character_id = ? AND p.enabled = 1%s
		GROUP BY p.stat_modified`,
		tables.Modifiers, tables.Attachments, tables.ForeignKey, s.activeFilter)

	return s, nil
}

// Kind returns the attachment kind the store serves
func (s *Store) Kind() entities.AttachmentKind {
	return s.kind
}

// Insert adds mods to the attachment and returns them with their ids set
func (s *Store) Insert(ctx context.Context, q database.Querier, attachmentID int64, mods []entities.StatModifier) ([]entities.StatModifier, error) {
	stored := make([]entities.StatModifier, 0, len(mods))
	for _, m := range mods {
		res, err := q.ExecContext(ctx, s.insertQuery, attachmentID, m.Stat, m.Value, m.Enabled)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to insert %s modifier", s.kind).
				WithMeta("attachment_id", attachmentID)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read modifier id")
		}
		m.ID = id
		m.AttachmentID = attachmentID
		stored = append(stored, m)
	}
	return stored, nil
}

// Replace deletes every modifier on the attachment and inserts mods. An
// empty mods leaves the attachment with no modifiers.
func (s *Store) Replace(ctx context.Context, q database.Querier, attachmentID int64, mods []entities.StatModifier) ([]entities.StatModifier, error) {
	if _, err := q.ExecContext(ctx, s.deleteQuery, attachmentID); err != nil {
		return nil, errors.Wrapf(err, "failed to clear %s modifiers", s.kind).
			WithMeta("attachment_id", attachmentID)
	}
	return s.Insert(ctx, q, attachmentID, mods)
}

// List returns the attachment's modifiers in insertion order
func (s *Store) List(ctx context.Context, q database.Querier, attachmentID int64) ([]entities.StatModifier, error) {
	rows, err := q.QueryContext(ctx, s.listQuery, attachmentID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s modifiers", s.kind)
	}
	defer func() { _ = rows.Close() }()

	mods := []entities.StatModifier{}
	for rows.Next() {
		m, err := scanModifier(rows)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list %s modifiers", s.kind)
	}
	return mods, nil
}

// ListByCharacter returns every modifier on the character's attachments,
// keyed by attachment id
func (s *Store) ListByCharacter(ctx context.Context, q database.Querier, characterID int64) (map[int64][]entities.StatModifier, error) {
	rows, err := q.QueryContext(ctx, s.listByChar, characterID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s modifiers", s.kind).
			WithMeta("character_id", characterID)
	}
	defer func() { _ = rows.Close() }()

	byAttachment := make(map[int64][]entities.StatModifier)
	for rows.Next() {
		m, err := scanModifier(rows)
		if err != nil {
			return nil, err
		}
		byAttachment[m.AttachmentID] = append(byAttachment[m.AttachmentID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list %s modifiers", s.kind)
	}
	return byAttachment, nil
}

// Toggle flips the modifier's enabled flag and returns the new value
func (s *Store) Toggle(ctx context.Context, q database.Querier, modifierID int64) (bool, error) {
	var enabled bool
	err := q.QueryRowContext(ctx, s.toggleQuery, modifierID).Scan(&enabled)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, errors.NotFound("modifier not found").WithMeta("modifier_id", modifierID)
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to toggle %s modifier", s.kind).
			WithMeta("modifier_id", modifierID)
	}
	return enabled, nil
}

// Sum groups the enabled modifier values of the character's active
// attachments by stat
func (s *Store) Sum(ctx context.Context, q database.Querier, characterID int64) (entities.Bonuses, error) {
	rows, err := q.QueryContext(ctx, s.sumQuery, characterID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sum %s bonuses", s.kind).
			WithMeta("character_id", characterID)
	}
	defer func() { _ = rows.Close() }()

	bonuses := make(entities.Bonuses)
	for rows.Next() {
		var (
			stat  string
			total int
		)
		if err := rows.Scan(&stat, &total); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s bonus", s.kind)
		}
		bonuses.Add(stat, total)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to sum %s bonuses", s.kind)
	}
	return bonuses, nil
}

func scanModifier(rows *sql.Rows) (entities.StatModifier, error) {
	var m entities.StatModifier
	if err := rows.Scan(&m.ID, &m.AttachmentID, &m.Stat, &m.Value, &m.Enabled); err != nil {
		return m, errors.Wrap(err, "failed to scan modifier")
	}
	return m, nil
}
