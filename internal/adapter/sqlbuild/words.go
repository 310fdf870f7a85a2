package sqlbuild

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/domain"
)

var wordColumns = []string{
	"w.id", "w.user_id", "w.term", "w.reading", "w.translation", "w.alt_translation",
	"w.phonetic", "w.other_translations", "w.image_url", "w.tags", "w.created_at", "w.updated_at",
	"s.difficulty", "s.next_review_at", "s.consecutive_easy", "s.consecutive_good", "s.last_review_at",
}

const wordFrom = "words w LEFT JOIN word_study_states s ON s.word_id = w.id"

// likeEscaper escapes LIKE wildcards in user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SelectWords lists a user's words ordered by creation. Offset only applies
// together with a positive Limit.
func (d Dialect) SelectWords(userID uuid.UUID, filter domain.WordFilter) (string, []any, error) {
	q := d.builder().
		Select(wordColumns...).
		From(wordFrom).
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("w.created_at", "w.id")

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(*filter.Search)) + "%"
		q = q.Where(sq.Or{
			sq.Expr(`LOWER(w.term) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(w.reading) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(w.translation) LIKE ? ESCAPE '\'`, pattern),
		})
	}
	if filter.FolderID != nil {
		q = q.Where(sq.Expr("w.id IN (SELECT word_id FROM word_folders WHERE folder_id = ?)", *filter.FolderID))
	}
	if filter.Unfiled {
		q = q.Where("NOT EXISTS (SELECT 1 FROM word_folders wf WHERE wf.word_id = w.id)")
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
		if filter.Offset > 0 {
			q = q.Offset(uint64(filter.Offset))
		}
	}

	return q.ToSql()
}

// SelectWord fetches one word with its study state. forUpdate locks the word
// row where the dialect supports it.
func (d Dialect) SelectWord(userID, wordID uuid.UUID, forUpdate bool) (string, []any, error) {
	q := d.builder().
		Select(wordColumns...).
		From(wordFrom).
		Where(sq.Eq{"w.id": wordID, "w.user_id": userID})
	if forUpdate && d.lockRows {
		// The study state sits on the nullable side of the join.
		q = q.Suffix("FOR UPDATE OF w")
	}
	return q.ToSql()
}

// SelectWordFolders returns (word_id, folder_id) pairs. A nil wordIDs selects
// the memberships of every word the user owns.
func (d Dialect) SelectWordFolders(userID uuid.UUID, wordIDs []uuid.UUID) (string, []any, error) {
	q := d.builder().
		Select("wf.word_id", "wf.folder_id").
		From("word_folders wf").
		Join("words w ON w.id = wf.word_id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("wf.word_id", "wf.folder_id")
	if wordIDs != nil {
		q = q.Where(sq.Eq{"wf.word_id": wordIDs})
	}
	return q.ToSql()
}

// InsertWord stores the word row. Folder links and study state are separate.
func (d Dialect) InsertWord(w *domain.Word) (string, []any, error) {
	others, err := encodeList(w.OtherTranslations)
	if err != nil {
		return "", nil, fmt.Errorf("encode other translations: %w", err)
	}
	tags, err := encodeList(w.Tags)
	if err != nil {
		return "", nil, fmt.Errorf("encode tags: %w", err)
	}
	return d.builder().
		Insert("words").
		Columns("id", "user_id", "term", "reading", "translation", "alt_translation",
			"phonetic", "other_translations", "image_url", "tags", "created_at", "updated_at").
		Values(w.ID, w.UserID, w.Term, w.Reading, w.Translation, w.AltTranslation,
			w.Phonetic, others, w.ImageURL, tags, w.CreatedAt.UTC(), w.UpdatedAt.UTC()).
		ToSql()
}

// InsertWordFolders links a word to folders, skipping existing links.
func (d Dialect) InsertWordFolders(wordID uuid.UUID, folderIDs []uuid.UUID) (string, []any, error) {
	q := d.builder().Insert("word_folders").Columns("word_id", "folder_id")
	for _, fid := range folderIDs {
		q = q.Values(wordID, fid)
	}
	return q.Suffix("ON CONFLICT (word_id, folder_id) DO NOTHING").ToSql()
}

// TouchWord bumps updated_at on an owned word. Zero affected rows means the
// word does not exist for this user.
func (d Dialect) TouchWord(userID, wordID uuid.UUID, now time.Time) (string, []any, error) {
	return d.builder().
		Update("words").
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": wordID, "user_id": userID}).
		ToSql()
}

// UpsertStudyState writes the review record of a word.
func (d Dialect) UpsertStudyState(wordID uuid.UUID, st domain.StudyState) (string, []any, error) {
	var next *time.Time
	if st.NextReviewAt != nil {
		t := st.NextReviewAt.UTC()
		next = &t
	}
	return d.builder().
		Insert("word_study_states").
		Columns("word_id", "difficulty", "next_review_at", "consecutive_easy", "consecutive_good", "last_review_at").
		Values(wordID, string(st.Difficulty), next, st.ConsecutiveEasy, st.ConsecutiveGood, st.LastReviewAt.UTC()).
		Suffix(`ON CONFLICT (word_id) DO UPDATE SET
			difficulty = excluded.difficulty,
			next_review_at = excluded.next_review_at,
			consecutive_easy = excluded.consecutive_easy,
			consecutive_good = excluded.consecutive_good,
			last_review_at = excluded.last_review_at`).
		ToSql()
}

// DeleteStudyState removes the review record so the word counts as unstudied.
func (d Dialect) DeleteStudyState(wordID uuid.UUID) (string, []any, error) {
	return d.builder().Delete("word_study_states").Where(sq.Eq{"word_id": wordID}).ToSql()
}

// DeleteWord removes an owned word. Links and study state cascade.
func (d Dialect) DeleteWord(userID, wordID uuid.UUID) (string, []any, error) {
	return d.builder().Delete("words").Where(sq.Eq{"id": wordID, "user_id": userID}).ToSql()
}

// CountWords counts all words of a user.
func (d Dialect) CountWords(userID uuid.UUID) (string, []any, error) {
	return d.builder().Select("COUNT(*)").From("words").Where(sq.Eq{"user_id": userID}).ToSql()
}

// CountByDifficulty groups a user's words by review tier. Unstudied words
// come back with an empty difficulty.
func (d Dialect) CountByDifficulty(userID uuid.UUID) (string, []any, error) {
	return d.builder().
		Select("COALESCE(s.difficulty, '')", "COUNT(*)").
		From(wordFrom).
		Where(sq.Eq{"w.user_id": userID}).
		GroupBy("COALESCE(s.difficulty, '')").
		ToSql()
}

// ScanWord reads a row produced by SelectWords or SelectWord.
func ScanWord(row RowScanner) (domain.Word, error) {
	var (
		w          domain.Word
		others     []byte
		tags       []byte
		difficulty *string
		next       *time.Time
		easy       *int
		good       *int
		last       *time.Time
	)
	err := row.Scan(
		&w.ID, &w.UserID, &w.Term, &w.Reading, &w.Translation, &w.AltTranslation,
		&w.Phonetic, &others, &w.ImageURL, &tags, &w.CreatedAt, &w.UpdatedAt,
		&difficulty, &next, &easy, &good, &last,
	)
	if err != nil {
		return domain.Word{}, err
	}

	if w.OtherTranslations, err = decodeList(others); err != nil {
		return domain.Word{}, fmt.Errorf("decode other translations: %w", err)
	}
	if w.Tags, err = decodeList(tags); err != nil {
		return domain.Word{}, fmt.Errorf("decode tags: %w", err)
	}

	if difficulty != nil {
		st := &domain.StudyState{
			Difficulty:   domain.Difficulty(*difficulty),
			NextReviewAt: next,
		}
		if easy != nil {
			st.ConsecutiveEasy = *easy
		}
		if good != nil {
			st.ConsecutiveGood = *good
		}
		if last != nil {
			st.LastReviewAt = *last
		}
		w.StudyState = st
	}
	return w, nil
}

// ScanDifficultyCount reads a row produced by CountByDifficulty.
func ScanDifficultyCount(row RowScanner) (string, int, error) {
	var (
		difficulty string
		n          int
	)
	err := row.Scan(&difficulty, &n)
	return difficulty, n, err
}

// AddDifficultyCount accumulates one CountByDifficulty row into stats.
func AddDifficultyCount(stats *domain.WordStats, difficulty string, n int) {
	stats.Total += n
	switch domain.Difficulty(difficulty) {
	case domain.DifficultyHard:
		stats.Hard += n
	case domain.DifficultyGood:
		stats.Good += n
	case domain.DifficultyEasy:
		stats.Easy += n
	case domain.DifficultyCompleted:
		stats.Completed += n
	default:
		stats.Unstudied += n
	}
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
