// Package word implements the Word repository on the embedded SQLite store.
package word

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/adapter/sqlbuild"
	"github.com/heartmarshall/tango-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

var dialect = sqlbuild.SQLite

// Repo provides word persistence backed by SQLite.
type Repo struct {
	db *sql.DB
	tx *sqlite.TxManager
}

// New creates a new word repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, tx: sqlite.NewTxManager(db)}
}

// GetByID returns a word owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	query, args, err := dialect.SelectWord(userID, wordID, false)
	if err != nil {
		return nil, fmt.Errorf("build select word: %w", err)
	}

	w, err := sqlbuild.ScanWord(sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, "word", wordID)
	}

	links, err := r.folderLinks(ctx, userID, []uuid.UUID{wordID})
	if err != nil {
		return nil, err
	}
	w.Folders = links[wordID]

	return &w, nil
}

// GetByIDForUpdate reads the word inside the caller's transaction. SQLite
// transactions begin IMMEDIATE, which already serializes writers.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return r.GetByID(ctx, userID, wordID)
}

// List returns the user's words matching filter, ordered by creation time.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	query, args, err := dialect.SelectWords(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
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

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
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
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// CountByDifficulty returns word counts per review tier.
func (r *Repo) CountByDifficulty(ctx context.Context, userID uuid.UUID) (domain.WordStats, error) {
	query, args, err := dialect.CountByDifficulty(userID)
	if err != nil {
		return domain.WordStats{}, fmt.Errorf("build count by difficulty: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
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

// Create inserts the word with its folder links.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := sqlite.QuerierFromCtx(ctx, r.db)

		query, args, err := dialect.InsertWord(w)
		if err != nil {
			return fmt.Errorf("build insert word: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return sqlite.MapError(err, "word", w.ID)
		}

		if len(w.Folders) == 0 {
			return nil
		}
		query, args, err = dialect.InsertWordFolders(w.ID, w.Folders)
		if err != nil {
			return fmt.Errorf("build insert word folders: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return sqlite.MapError(err, "word_folder", w.ID)
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
		if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
			return sqlite.MapError(err, "study_state", wordID)
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
		if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
			return sqlite.MapError(err, "study_state", wordID)
		}
		return nil
	})
}

func (r *Repo) touch(ctx context.Context, userID, wordID uuid.UUID) error {
	query, args, err := dialect.TouchWord(userID, wordID, time.Now())
	if err != nil {
		return fmt.Errorf("build touch word: %w", err)
	}
	return r.execOne(ctx, query, args, wordID)
}

// Delete removes an owned word together with its links and study state.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	query, args, err := dialect.DeleteWord(userID, wordID)
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}
	return r.execOne(ctx, query, args, wordID)
}

// execOne runs a statement that must affect exactly the owned word row.
func (r *Repo) execOne(ctx context.Context, query string, args []any, wordID uuid.UUID) error {
	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "word", wordID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sqlite.MapError(sql.ErrNoRows, "word", wordID)
	}
	return nil
}
