package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jaswanthh22/otpauth-cli/internal/client/session/migrations"
	"github.com/Jaswanthh22/otpauth-cli/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the Store implementation backed by a local sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already opened database. Used by tests; production
// code goes through Open.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (creating if needed) the session database at path, runs
// migrations, and wipes the transient scope: a new program run must not see
// banners queued by a previous one.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session database %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM storage WHERE scope = ?`, scopeTransient); err != nil {
		db.Close()
		return nil, fmt.Errorf("clearing transient storage: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// IsAuthenticated reports whether a completed login is recorded. Any value
// other than the exact string "true" (including absence) means "not
// authenticated".
func (s *SQLiteStore) IsAuthenticated(ctx context.Context) (bool, error) {
	v, err := getValue(ctx, s.db, scopeDurable, authFlagKey)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetSession records the authenticated flag together with the username in a
// single transaction. The username content is not validated.
func (s *SQLiteStore) SetSession(ctx context.Context, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setValue(ctx, tx, scopeDurable, authFlagKey, "true"); err != nil {
			return err
		}
		return setValue(ctx, tx, scopeDurable, authUserKey, username)
	})
}

// ClearSession removes the flag and the username together. Clearing an
// already empty session is not an error.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := deleteValue(ctx, tx, scopeDurable, authFlagKey); err != nil {
			return err
		}
		return deleteValue(ctx, tx, scopeDurable, authUserKey)
	})
}

func (s *SQLiteStore) StoredUsername(ctx context.Context) (string, error) {
	return getValue(ctx, s.db, scopeDurable, authUserKey)
}

func (s *SQLiteStore) SetLoginBanner(ctx context.Context, text string) error {
	return setValue(ctx, s.db, scopeTransient, loginBannerKey, text)
}

// TakeLoginBanner returns the queued banner and deletes it in the same
// transaction, so the banner is shown at most once.
func (s *SQLiteStore) TakeLoginBanner(ctx context.Context) (string, error) {
	var text string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		v, err := getValue(ctx, tx, scopeTransient, loginBannerKey)
		if err != nil {
			return err
		}
		text = v
		if v == "" {
			return nil
		}
		return deleteValue(ctx, tx, scopeTransient, loginBannerKey)
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func getValue(ctx context.Context, db dbx.DBTX, scope, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM storage WHERE scope = ? AND key = ?`, scope, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get storage[%s/%s]: %w", scope, key, err)
	}
	return value, nil
}

func setValue(ctx context.Context, db dbx.DBTX, scope, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO storage (scope, key, value) VALUES (?, ?, ?)
		ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value
	`, scope, key, value)
	if err != nil {
		return fmt.Errorf("failed to set storage[%s/%s]: %w", scope, key, err)
	}
	return nil
}

func deleteValue(ctx context.Context, db dbx.DBTX, scope, key string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM storage WHERE scope = ? AND key = ?`, scope, key,
	)
	if err != nil {
		return fmt.Errorf("failed to delete storage[%s/%s]: %w", scope, key, err)
	}
	return nil
}
