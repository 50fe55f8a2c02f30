package database_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

type DatabaseTestSuite struct {
	suite.Suite
	ctx context.Context
	db  *database.DB
}

func (s *DatabaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	db, err := database.Open(s.ctx, database.MemoryPath)
	s.Require().NoError(err)
	s.Require().NoError(db.MigrateUp())
	s.db = db
}

func (s *DatabaseTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *DatabaseTestSuite) insertUser(q database.Querier, name string) int64 {
	res, err := q.ExecContext(s.ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, 'x', 0)`, name)
	s.Require().NoError(err)
	id, err := res.LastInsertId()
	s.Require().NoError(err)
	return id
}

func (s *DatabaseTestSuite) count(table string) int {
	var n int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func (s *DatabaseTestSuite) TestOpenRequiresPath() {
	_, err := database.Open(s.ctx, "  ")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DatabaseTestSuite) TestMigrateUpIsIdempotent() {
	s.Require().NoError(s.db.MigrateUp())

	status, err := s.db.MigrationVersion()
	s.Require().NoError(err)
	s.Equal(uint(1), status.Version)
	s.False(status.Dirty)
	s.False(status.Empty)
}

func (s *DatabaseTestSuite) TestMigrateDown() {
	s.Require().NoError(s.db.MigrateDown())

	status, err := s.db.MigrationVersion()
	s.Require().NoError(err)
	s.True(status.Empty)

	_, err = s.db.ExecContext(s.ctx, `SELECT 1 FROM users`)
	s.Error(err)
}

func (s *DatabaseTestSuite) TestWithTx() {
	s.Run("commits on success", func() {
		err := s.db.WithTx(s.ctx, func(tx database.Querier) error {
			s.insertUser(tx, "committed")
			return nil
		})
		s.Require().NoError(err)
		s.Equal(1, s.count("users"))
	})

	s.Run("rolls back on error", func() {
		boom := stderrors.New("boom")
		err := s.db.WithTx(s.ctx, func(tx database.Querier) error {
			s.insertUser(tx, "rolled-back")
			return boom
		})
		s.ErrorIs(err, boom)
		s.Equal(1, s.count("users"))
	})
}

func (s *DatabaseTestSuite) TestForeignKeysCascade() {
	userID := s.insertUser(s.db, "owner")
	res, err := s.db.ExecContext(s.ctx,
		`INSERT INTO characters (user_id, name, created_at, updated_at) VALUES (?, 'Hero', 0, 0)`, userID)
	s.Require().NoError(err)
	charID, err := res.LastInsertId()
	s.Require().NoError(err)

	res, err = s.db.ExecContext(s.ctx,
		`INSERT INTO inventory_items (character_id, name) VALUES (?, 'Sword')`, charID)
	s.Require().NoError(err)
	itemID, err := res.LastInsertId()
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx,
		`INSERT INTO item_properties (item_id, stat_modified, value) VALUES (?, 'ac', 1)`, itemID)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(s.ctx, `DELETE FROM users WHERE id = ?`, userID)
	s.Require().NoError(err)

	s.Equal(0, s.count("characters"))
	s.Equal(0, s.count("inventory_items"))
	s.Equal(0, s.count("item_properties"))
}

func (s *DatabaseTestSuite) TestOrphanInsertRejected() {
	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO features (character_id, name) VALUES (999, 'Darkvision')`)
	s.Error(err)
}

func (s *DatabaseTestSuite) TestCurrencyAmountNeverNegative() {
	userID := s.insertUser(s.db, "owner")
	res, err := s.db.ExecContext(s.ctx,
		`INSERT INTO characters (user_id, name, created_at, updated_at) VALUES (?, 'Hero', 0, 0)`, userID)
	s.Require().NoError(err)
	charID, err := res.LastInsertId()
	s.Require().NoError(err)

	_, err = s.db.ExecContext(s.ctx,
		`INSERT INTO currencies (character_id, name, amount) VALUES (?, 'Gold', -1)`, charID)
	s.Error(err)
}

func (s *DatabaseTestSuite) TestOpenFile() {
	path := filepath.Join(s.T().TempDir(), "sheets.db")
	db, err := database.Open(s.ctx, path)
	s.Require().NoError(err)
	defer func() { s.NoError(db.Close()) }()

	s.Require().NoError(db.MigrateUp())
	status, err := db.MigrationVersion()
	s.Require().NoError(err)
	s.Equal(uint(1), status.Version)
}

func TestDatabaseTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseTestSuite))
}
