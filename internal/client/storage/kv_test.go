package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:storage_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return db
}

func TestKV_SetGet(t *testing.T) {
	kv := NewKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyToken, []byte("tok-1")))

	got, err := kv.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), got)
}

func TestKV_SetOverwrites(t *testing.T) {
	kv := NewKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyToken, []byte("old")))
	require.NoError(t, kv.Set(ctx, KeyToken, []byte("new")))

	got, err := kv.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestKV_GetMissingIsNil(t *testing.T) {
	kv := NewKV(setupDB(t))

	got, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestKV_Delete(t *testing.T) {
	kv := NewKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, kv.Delete(ctx, KeyToken))

	got, err := kv.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestOpen_DropsLegacyFlag(t *testing.T) {
	ctx := context.Background()

	dsn := "file:storage_open_tests?mode=memory&cache=shared"

	// Keep one connection alive so the shared in-memory DB survives Open's
	// own connection pool.
	holder, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = holder.Close() })
	require.NoError(t, holder.Ping())

	kv, db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, kv.Set(ctx, KeyLegacyLoggedIn, []byte("true")))

	kv2, db2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	got, err := kv2.Get(ctx, KeyLegacyLoggedIn)
	require.NoError(t, err)
	require.Nil(t, got, "legacy flag must be dropped on open")
}
