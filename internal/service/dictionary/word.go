package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/pkg/ctxutil"
)

// CreateWord adds a word to the user's collection. The word starts unstudied.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	if count >= s.cfg.MaxWordsPerUser {
		return nil, domain.NewValidationError("words", "limit reached")
	}

	folders := uniqueIDs(input.Folders)

	var created *domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, id := range folders {
			if _, err := s.folders.GetByID(txCtx, userID, id); err != nil {
				return fmt.Errorf("folder %s: %w", id, err)
			}
		}

		now := time.Now().UTC()
		word := &domain.Word{
			ID:                uuid.New(),
			UserID:            userID,
			Term:              strings.TrimSpace(input.Term),
			Reading:           strings.TrimSpace(input.Reading),
			Translation:       strings.TrimSpace(input.Translation),
			AltTranslation:    strings.TrimSpace(input.AltTranslation),
			Phonetic:          strings.TrimSpace(input.Phonetic),
			OtherTranslations: compact(input.OtherTranslations),
			ImageURL:          strings.TrimSpace(input.ImageURL),
			Tags:              compact(input.Tags),
			Folders:           folders,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		var createErr error
		created, createErr = s.words.Create(txCtx, word)
		if createErr != nil {
			return fmt.Errorf("create word: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("user_id", userID.String()),
		slog.String("word_id", created.ID.String()),
		slog.Int("folders", len(created.Folders)),
	)

	return created, nil
}

// GetWord returns a single word with its folders and study state.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.words.GetByID(ctx, userID, wordID)
}

// ListWords searches and paginates the user's words.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var search *string
	if input.Search != nil {
		if q := strings.TrimSpace(*input.Search); q != "" {
			search = &q
		}
	}

	filter := domain.WordFilter{
		Search:   search,
		FolderID: input.FolderID,
		Unfiled:  input.Unfiled,
		Limit:    clampLimit(input.Limit, 1, 500, 50),
		Offset:   input.Offset,
	}

	words, err := s.words.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// DeleteWord removes a word together with its study state and folder links.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.Delete(ctx, userID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// compact trims values and drops the empty ones.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
