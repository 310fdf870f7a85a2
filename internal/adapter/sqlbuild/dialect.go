// Package sqlbuild holds the word and folder queries shared by the PostgreSQL
// and SQLite repositories. Both stores use the same schema; only placeholders
// and row locking differ.
package sqlbuild

import (
	sq "github.com/Masterminds/squirrel"
)

// Dialect describes the SQL flavour a repository talks to.
type Dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	// lockRows enables SELECT ... FOR UPDATE. SQLite has no row locks and
	// relies on BEGIN IMMEDIATE instead.
	lockRows bool
}

var (
	Postgres = Dialect{name: "postgres", placeholder: sq.Dollar, lockRows: true}
	SQLite   = Dialect{name: "sqlite", placeholder: sq.Question}
)

func (d Dialect) String() string { return d.name }

func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// RowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}
