// Package sqlite provides the embedded single-file store: connection setup,
// context-carried transactions and error mapping for the word and folder
// repositories in its subpackages.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/heartmarshall/tango-backend/internal/config"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

// DSN builds a go-sqlite3 connection string for path. Foreign keys are on,
// every transaction begins IMMEDIATE and waits up to five seconds for a lock.
func DSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	params.Set("_busy_timeout", "5000")
	if path != ":memory:" {
		params.Set("_journal_mode", "WAL")
	}
	return "file:" + path + "?" + params.Encode()
}

// Open opens the database at cfg.SQLitePath and pings it.
// The store is single-writer, so one connection is enough and keeps
// ":memory:" databases shared across calls.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(DriverName, DSN(cfg.SQLitePath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
