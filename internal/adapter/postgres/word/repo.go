// Package word implements the Word repository using PostgreSQL.
// Words carry their folder links and their study state, stored in the
// word_folders and word_study_states tables.
package word

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tango-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tango-backend/internal/adapter/sqlbuild"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

var dialect = sqlbuild.Postgres

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return r.get(ctx, userID, wordID, false)
}

// GetByIDForUpdate is GetByID plus a row lock held until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return r.get(ctx, userID, wordID, true)
}

func (r *Repo) get(ctx context.Context, userID, wordID uuid.UUID, forUpdate bool) (*domain.Word, error) {
	query, args, err := dialect.SelectWord(userID, wordID, forUpdate)
	if err != nil {
		return nil, fmt.Errorf("build select word: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	w, err := sqlbuild.ScanWord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	folders, err := r.folderLinks(ctx, userID, []uuid.UUID{wordID})
	if err != nil {
		return nil, err
	}
	w.Folders = folders[wordID]

	return &w, nil
}

// List returns the user's words matching filter, ordered by creation time.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	query, args, err := dialect.SelectWords(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	words := make([]domain.Word, 0)
	for rows.Next() {
		w, err := sqlbuild.ScanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if len(words) == 0 {
		return words, nil
	}

	// An unpaged listing loads every link of the user in one query.
	var ids []uuid.UUID
	if filter.Limit > 0 {
		ids = make([]uuid.UUID, len(words))
		for i := range words {
			ids[i] = words[i].ID
		}
	}
	links, err := r.folderLinks(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	for i := range words {
		words[i].Folders = links[words[i].ID]
	}

	return words, nil
}

func (r *Repo) folderLinks(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	query, args, err := dialect.SelectWordFolders(userID, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("build select word folders: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select word folders: %w", err)
	}
	defer rows.Close()

	links := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var wordID, folderID uuid.UUID
		if err := rows.Scan(&wordID, &folderID); err != nil {
			return nil, fmt.Errorf("scan word folder: %w", err)
		}
		links[wordID] = append(links[wordID], folderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select word folders: %w", err)
	}

	return links, nil
}

// CountByUser returns the number of words owned by userID.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := dialect.CountWords(userID)
	if err != nil {
		return 0, fmt.Errorf("build count words: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// CountByDifficulty returns word counts per review tier. DueToday is left
// for the caller, which owns the day boundary.
func (r *Repo) CountByDifficulty(ctx context.Context, userID uuid.UUID) (domain.WordStats, error) {
	query, args, err := dialect.CountByDifficulty(userID)
	if err != nil {
		return domain.WordStats{}, fmt.Errorf("build count by difficulty: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return domain.WordStats{}, fmt.Errorf("count by difficulty: %w", err)
	}
	defer rows.Close()

	var stats domain.WordStats
	for rows.Next() {
		difficulty, n, err := sqlbuild.ScanDifficultyCount(rows)
		if err != nil {
			return domain.WordStats{}, fmt.Errorf("scan difficulty count: %w", err)
		}
		sqlbuild.AddDifficultyCount(&stats, difficulty, n)
	}
	if err := rows.Err(); err != nil {
		return domain.WordStats{}, fmt.Errorf("count by difficulty: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the word with its folder links. The word must carry its ID
// and timestamps. Unknown folders yield domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		querier := postgres.QuerierFromCtx(ctx, r.pool)

		query, args, err := dialect.InsertWord(w)
		if err != nil {
			return fmt.Errorf("build insert word: %w", err)
		}
		if _, err := querier.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "word", w.ID)
		}

		if len(w.Folders) == 0 {
			return nil
		}
		query, args, err = dialect.InsertWordFolders(w.ID, w.Folders)
		if err != nil {
			return fmt.Errorf("build insert word folders: %w", err)
		}
		if _, err := querier.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "word_folder", w.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := *w
	return &created, nil
}

// UpdateStudyState stores the review record of an owned word.
func (r *Repo) UpdateStudyState(ctx context.Context, userID, wordID uuid.UUID, state domain.StudyState) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.touch(ctx, userID, wordID); err != nil {
			return err
		}

		query, args, err := dialect.UpsertStudyState(wordID, state)
		if err != nil {
			return fmt.Errorf("build upsert study state: %w", err)
		}
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "study_state", wordID)
		}
		return nil
	})
}

// ResetStudyState drops the review record so the word is unstudied again.
func (r *Repo) ResetStudyState(ctx context.Context, userID, wordID uuid.UUID) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.touch(ctx, userID, wordID); err != nil {
			return err
		}

		query, args, err := dialect.DeleteStudyState(wordID)
		if err != nil {
			return fmt.Errorf("build delete study state: %w", err)
		}
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "study_state", wordID)
		}
		return nil
	})
}

func (r *Repo) touch(ctx context.Context, userID, wordID uuid.UUID) error {
	query, args, err := dialect.TouchWord(userID, wordID, time.Now())
	if err != nil {
		return fmt.Errorf("build touch word: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word", wordID)
	}
	return nil
}

// Delete removes an owned word together with its links and study state.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	query, args, err := dialect.DeleteWord(userID, wordID)
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word", wordID)
	}
	return nil
}
