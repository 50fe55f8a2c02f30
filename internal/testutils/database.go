package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
)

// CreateTestDB opens a migrated in-memory database that is closed when the
// test ends
func CreateTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.MemoryPath)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.MigrateUp(), "failed to migrate test database")

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
