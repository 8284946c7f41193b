// Package storage is the durable local store of the QuickWork client: a
// small sqlite file holding session credentials and the locally edited
// profile as key-value pairs.
package storage

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/quickworkapp/quickwork-cli/internal/client/storage/migrations"

	_ "modernc.org/sqlite"
)

// Well-known keys.
const (
	// KeyToken holds the bearer token of the current session.
	KeyToken = "token"
	// KeyProfile holds the JSON-encoded local profile.
	KeyProfile = "profile"
	// KeyLegacyLoggedIn is the boolean flag a previous client version kept
	// alongside the token. It is never written anymore; Open drops it so a
	// stale flag cannot contradict the token.
	KeyLegacyLoggedIn = "hasLoggedIn"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the local data file at dsn, applies
// migrations, and returns a ready key-value store. The legacy logged-in
// flag is removed so the token remains the single source of truth.
func Open(ctx context.Context, dsn string) (*KV, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	kv := NewKV(db)
	if err := kv.Delete(ctx, KeyLegacyLoggedIn); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return kv, db, nil
}
