package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// pragmas applied to every connection through the go-sqlite3 DSN.
var pragmas = url.Values{
	"_foreign_keys": {"on"},
	"_busy_timeout": {"5000"},
	"_journal_mode": {"WAL"},
}

// Open opens the sqlite file at path and checks that it is usable. The pool
// is a single connection: the shop is written from one process and sqlite
// serializes writers anyway.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?" + pragmas.Encode()
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// WithTx runs fn in a transaction, committing when it returns nil. The
// transaction is rolled back when fn fails or panics.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
