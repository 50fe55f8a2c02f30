package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
)

// Fixture defaults
const (
	TestUsername      = "thorin"
	TestOtherUsername = "smaug"
	TestCharacterName = "Thorin Oakenshield"
)

func insert(t *testing.T, db *database.DB, query string, args ...any) int64 {
	t.Helper()
	res, err := db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err, "fixture insert failed: %s", query)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// SeedUser inserts a user row and returns its id
func SeedUser(t *testing.T, db *database.DB, username string) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, 'fixture', 0)`,
		username)
}

// SeedCharacter inserts a bare character for userID and returns its id
func SeedCharacter(t *testing.T, db *database.DB, userID int64, name string) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO characters (user_id, name, created_at, updated_at) VALUES (?, ?, 0, 0)`,
		userID, name)
}

// SeedItem inserts an inventory item and returns its id
func SeedItem(t *testing.T, db *database.DB, characterID int64, name string, equipped bool) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO inventory_items (character_id, name, equipped) VALUES (?, ?, ?)`,
		characterID, name, equipped)
}

// SeedFeature inserts a feature and returns its id
func SeedFeature(t *testing.T, db *database.DB, characterID int64, name string) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO features (character_id, name) VALUES (?, ?)`,
		characterID, name)
}

// SeedSpell inserts a spell and returns its id
func SeedSpell(t *testing.T, db *database.DB, characterID int64, name string, level int) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO spells (character_id, name, level) VALUES (?, ?, ?)`,
		characterID, name, level)
}

// SeedModifier attaches a stat modifier to an attachment of kind
func SeedModifier(t *testing.T, db *database.DB, kind entities.AttachmentKind, attachmentID int64, stat string, value int, enabled bool) int64 {
	t.Helper()
	tables, err := database.TablesFor(kind)
	require.NoError(t, err)
	return insert(t, db,
		fmt.Sprintf(`INSERT INTO %s (%s, stat_modified, value, enabled) VALUES (?, ?, ?, ?)`,
			tables.Modifiers, tables.ForeignKey),
		attachmentID, stat, value, enabled)
}
