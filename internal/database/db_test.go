package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.sqlite")
	require.NoError(t, RunMigrations(path))
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countOrders(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&n))
	return n
}

func TestOpenAppliesPragmas(t *testing.T) {
	t.Parallel()

	db := openMigrated(t)
	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	require.Equal(t, 1, fk)

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	require.Equal(t, "wal", mode)
}

func TestOpenFailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing", "db.sqlite"))
	require.Error(t, err)
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openMigrated(t)
	insert := func(tx *sql.Tx, id string) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO orders (id, total_cents, item_count, created_at) VALUES (?, 0, 0, CURRENT_TIMESTAMP)`, id)
		return err
	}

	require.NoError(t, WithTx(ctx, db, func(tx *sql.Tx) error { return insert(tx, "a") }))
	require.Equal(t, 1, countOrders(t, db))

	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		require.NoError(t, insert(tx, "b"))
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, countOrders(t, db))

	require.Panics(t, func() {
		_ = WithTx(ctx, db, func(tx *sql.Tx) error {
			require.NoError(t, insert(tx, "c"))
			panic("boom")
		})
	})
	require.Equal(t, 1, countOrders(t, db))
}
