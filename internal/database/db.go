// Package database handles the initialization of and access to the SQLite stores
package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

func init() {
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Migration creates the schema for one store
type Migration func(ctx context.Context, db *sqlx.DB) error

// InitDB opens the SQLite file at path, applies the connection pragmas and runs migrate.
// The parent directory is created if needed. ":memory:" is accepted for tests.
func InitDB(ctx context.Context, path string, migrate Migration) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	closeOnErr := func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr, "path", path)
		}
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this duration before returning SQLITE_BUSY
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeOnErr()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeOnErr()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// One handle, one connection: every store has a single synchronous writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if migrate != nil {
		if err := migrate(ctx, db); err != nil {
			closeOnErr()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return db, nil
}
