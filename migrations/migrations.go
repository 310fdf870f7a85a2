// Package migrations embeds the schema for both supported stores and applies
// it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect selects which schema directory to apply.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) goose() (goose.Dialect, error) {
	switch d {
	case Postgres:
		return goose.DialectPostgres, nil
	case SQLite:
		return goose.DialectSQLite3, nil
	}
	return "", fmt.Errorf("unknown migration dialect %q", string(d))
}

// FS returns the migration files for the dialect.
func FS(d Dialect) (fs.FS, error) {
	return fs.Sub(files, string(d))
}

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB, d Dialect, log *slog.Logger) error {
	dialect, err := d.goose()
	if err != nil {
		return err
	}
	fsys, err := FS(d)
	if err != nil {
		return fmt.Errorf("open %s migrations: %w", d, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.String("dialect", string(d)),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}
