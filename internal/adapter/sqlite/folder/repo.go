// Package folder implements the Folder repository on the embedded SQLite store.
package folder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/adapter/sqlbuild"
	"github.com/heartmarshall/tango-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

var dialect = sqlbuild.SQLite

// Repo provides folder persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new folder repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a folder owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	query, args, err := dialect.SelectFolder(userID, folderID)
	if err != nil {
		return nil, fmt.Errorf("build select folder: %w", err)
	}

	f, err := sqlbuild.ScanFolder(sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, "folder", folderID)
	}
	return &f, nil
}

// List returns all folders of a user ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	query, args, err := dialect.SelectFolders(userID)
	if err != nil {
		return nil, fmt.Errorf("build list folders: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]domain.Folder, 0)
	for rows.Next() {
		f, err := sqlbuild.ScanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// Create inserts a folder. A duplicate name for the same user yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	query, args, err := dialect.InsertFolder(f)
	if err != nil {
		return nil, fmt.Errorf("build insert folder: %w", err)
	}
	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, "folder", f.ID)
	}

	created := *f
	return &created, nil
}
