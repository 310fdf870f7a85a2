// Package testhelper opens migrated in-memory SQLite databases for tests.
package testhelper

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/tango-backend/internal/config"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/migrations"
)

// SetupTestDB returns a private, migrated in-memory database closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(ctx, db, migrations.SQLite, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("testhelper: migrate sqlite: %v", err)
	}
	return db
}

// Now returns the current UTC time.
func Now() time.Time {
	return time.Now().UTC()
}

// SeedFolder creates a root folder with a unique name for userID.
func SeedFolder(t *testing.T, db *sql.DB, userID uuid.UUID) domain.Folder {
	t.Helper()

	folder := domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "folder-" + uuid.New().String()[:8],
		CreatedAt: Now(),
	}
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO folders (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`,
		folder.ID, folder.UserID, folder.Name, folder.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder: %v", err)
	}
	return folder
}

// SeedWord creates an unstudied word linked to the given folders.
func SeedWord(t *testing.T, db *sql.DB, userID uuid.UUID, folders ...uuid.UUID) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	now := Now()
	word := domain.Word{
		ID:          uuid.New(),
		UserID:      userID,
		Term:        "term-" + suffix,
		Translation: "translation-" + suffix,
		Folders:     folders,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO words (id, user_id, term, translation, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		word.ID, word.UserID, word.Term, word.Translation, word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	for _, folderID := range folders {
		_, err := db.ExecContext(ctx,
			`INSERT INTO word_folders (word_id, folder_id) VALUES (?, ?)`, word.ID, folderID)
		if err != nil {
			t.Fatalf("testhelper: SeedWord link folder: %v", err)
		}
	}
	return word
}
