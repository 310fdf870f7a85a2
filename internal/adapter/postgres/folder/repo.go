// Package folder implements the Folder repository using PostgreSQL.
package folder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tango-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tango-backend/internal/adapter/sqlbuild"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

var dialect = sqlbuild.Postgres

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a folder owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	query, args, err := dialect.SelectFolder(userID, folderID)
	if err != nil {
		return nil, fmt.Errorf("build select folder: %w", err)
	}

	f, err := sqlbuild.ScanFolder(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "folder", folderID)
	}
	return &f, nil
}

// List returns all folders of a user ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	query, args, err := dialect.SelectFolders(userID)
	if err != nil {
		return nil, fmt.Errorf("build list folders: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
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
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "folder", f.ID)
	}

	created := *f
	return &created, nil
}
