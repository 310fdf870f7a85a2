package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tango-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedFolder creates a root folder with a unique name for userID.
func SeedFolder(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Folder {
	t.Helper()

	folder := domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "folder-" + uniqueSuffix(),
		CreatedAt: Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO folders (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		folder.ID, folder.UserID, folder.Name, folder.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder: %v", err)
	}

	return folder
}

// SeedWord creates an unstudied word linked to the given folders.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, folders ...uuid.UUID) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
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

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, user_id, term, translation, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		word.ID, word.UserID, word.Term, word.Translation, word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	for _, folderID := range folders {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_folders (word_id, folder_id) VALUES ($1, $2)`,
			word.ID, folderID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord link folder: %v", err)
		}
	}

	return word
}
