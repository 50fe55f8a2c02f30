package user

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
)

const (
	userColumns = `id, username, password_hash, is_admin, display_preference, created_at`

	errUserIDInvalid = "user ID must be positive"
)

type sqliteRepository struct {
	db    *database.DB
	clock clock.Clock
}

// Config contains configuration for the SQLite account repository
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

// NewSQLite creates a new SQLite-backed account repository
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
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", input.Username, vb)
	errors.ValidateRequired("password_hash", input.PasswordHash, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.clock.Now()
	}

	u := &entities.User{
		Username:          input.Username,
		PasswordHash:      input.PasswordHash,
		DisplayPreference: entities.DefaultDisplayPreference,
		CreatedAt:         database.FromMillis(database.ToMillis(createdAt)),
	}

	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		var taken int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM users WHERE username = ?`, input.Username).Scan(&taken)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if taken > 0 {
			return errors.AlreadyExistsf("username %q is already taken", input.Username)
		}

		var existing int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&existing); err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		u.IsAdmin = existing == 0

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, password_hash, is_admin, display_preference, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			u.Username, u.PasswordHash, u.IsAdmin, string(u.DisplayPreference), database.ToMillis(u.CreatedAt))
		if err != nil {
			if isUniqueViolation(err) {
				return errors.AlreadyExistsf("username %q is already taken", input.Username)
			}
			return errors.Wrap(err, "failed to insert user")
		}

		u.ID, err = res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read user id")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{User: u}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errUserIDInvalid)
	}

	u, err := r.get(ctx, r.db, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{User: u}, nil
}

func (r *sqliteRepository) GetByUsername(ctx context.Context, input GetByUsernameInput) (*GetByUsernameOutput, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, errors.InvalidArgument("username cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, input.Username)
	u, err := scanUser(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("user not found").WithMeta("username", input.Username)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	return &GetByUsernameOutput{User: u}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	defer func() { _ = rows.Close() }()

	users := []*entities.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &ListOutput{Users: users}, nil
}

func (r *sqliteRepository) SetAdmin(ctx context.Context, input SetAdminInput) (*SetAdminOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errUserIDInvalid)
	}

	var u *entities.User
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		res, err := tx.ExecContext(ctx, `UPDATE users SET is_admin = ? WHERE id = ?`, input.IsAdmin, input.ID)
		if err != nil {
			return errors.Wrap(err, "failed to update admin flag")
		}
		if err := requireRow(res, input.ID); err != nil {
			return err
		}
		u, err = r.get(ctx, tx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &SetAdminOutput{User: u}, nil
}

func (r *sqliteRepository) SetDisplayPreference(ctx context.Context, input SetDisplayPreferenceInput) (*SetDisplayPreferenceOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("id", input.ID, vb)
	errors.ValidateEnum("display_preference", string(input.Preference), entities.DisplayPreferences(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var u *entities.User
	err := r.db.WithTx(ctx, func(tx database.Querier) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE users SET display_preference = ? WHERE id = ?`, string(input.Preference), input.ID)
		if err != nil {
			return errors.Wrap(err, "failed to update display preference")
		}
		if err := requireRow(res, input.ID); err != nil {
			return err
		}
		u, err = r.get(ctx, tx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &SetDisplayPreferenceOutput{User: u}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errUserIDInvalid)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user").WithMeta("user_id", input.ID)
	}
	if err := requireRow(res, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) get(ctx context.Context, q database.Querier, id int64) (*entities.User, error) {
	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("user not found").WithMeta("user_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user").WithMeta("user_id", id)
	}
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*entities.User, error) {
	var (
		u          entities.User
		preference string
		createdAt  int64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &preference, &createdAt); err != nil {
		return nil, err
	}
	u.DisplayPreference = entities.DisplayPreference(preference)
	u.CreatedAt = database.FromMillis(createdAt)
	return &u, nil
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFound("user not found").WithMeta("user_id", id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
