package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/tango-backend/internal/adapter/postgres"
	pgfolder "github.com/heartmarshall/tango-backend/internal/adapter/postgres/folder"
	pgword "github.com/heartmarshall/tango-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/tango-backend/internal/adapter/sqlite"
	litefolder "github.com/heartmarshall/tango-backend/internal/adapter/sqlite/folder"
	liteword "github.com/heartmarshall/tango-backend/internal/adapter/sqlite/word"
	"github.com/heartmarshall/tango-backend/internal/config"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/internal/transport/rest"
	"github.com/heartmarshall/tango-backend/migrations"
)

// wordRepository is the union of what the dictionary and study services need.
type wordRepository interface {
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountByDifficulty(ctx context.Context, userID uuid.UUID) (domain.WordStats, error)
	Create(ctx context.Context, word *domain.Word) (*domain.Word, error)
	UpdateStudyState(ctx context.Context, userID, wordID uuid.UUID, state domain.StudyState) error
	ResetStudyState(ctx context.Context, userID, wordID uuid.UUID) error
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
}

type folderRepository interface {
	GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error)
	Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// store is the repository set of the configured driver.
type store struct {
	driver  string
	words   wordRepository
	folders folderRepository
	tx      txRunner
	ping    rest.PingFunc
	close   func()
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		// goose needs database/sql; borrow connections from the pool.
		db := stdlib.OpenDBFromPool(pool)
		err := migrations.Up(ctx, db, migrations.Postgres, log)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}

	log.InfoContext(ctx, "store ready", slog.String("driver", cfg.Driver))
	return &store{
		driver:  config.DriverPostgres,
		words:   pgword.New(pool),
		folders: pgfolder.New(pool),
		tx:      postgres.NewTxManager(pool),
		ping:    pool.Ping,
		close:   pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	db, err := sqlite.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		if err := migrations.Up(ctx, db, migrations.SQLite, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
	}

	log.InfoContext(ctx, "store ready",
		slog.String("driver", cfg.Driver),
		slog.String("path", cfg.SQLitePath),
	)
	return &store{
		driver:  config.DriverSQLite,
		words:   liteword.New(db),
		folders: litefolder.New(db),
		tx:      sqlite.NewTxManager(db),
		ping:    db.PingContext,
		close:   func() { _ = db.Close() },
	}, nil
}
