package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/pkg/ctxutil"
)

// ReviewWord applies a rating to a single word and persists the new study state.
func (s *Service) ReviewWord(ctx context.Context, input ReviewWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.applyRating(ctx, userID, input.WordID, input.Rating)
}

// applyRating is one read-modify-write of a word's study state.
func (s *Service) applyRating(ctx context.Context, userID, wordID uuid.UUID, rating domain.Rating) (*domain.Word, error) {
	var rated ratedWord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rated, err = s.rateWord(txCtx, userID, wordID, rating)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logRating(ctx, userID, rating, rated)
	return rated.word, nil
}

type ratedWord struct {
	word *domain.Word
	prev *domain.StudyState
}

// rateWord locks the word and stores its next state. It must run inside a
// transaction.
func (s *Service) rateWord(txCtx context.Context, userID, wordID uuid.UUID, rating domain.Rating) (ratedWord, error) {
	word, err := s.words.GetByIDForUpdate(txCtx, userID, wordID)
	if err != nil {
		return ratedWord{}, fmt.Errorf("get word: %w", err)
	}

	next, err := s.nextStateFor(txCtx, word, rating, s.clock.Now())
	if err != nil {
		return ratedWord{}, err
	}

	if err := s.words.UpdateStudyState(txCtx, userID, word.ID, next); err != nil {
		return ratedWord{}, fmt.Errorf("update study state: %w", err)
	}

	prev := word.StudyState
	word.StudyState = &next
	return ratedWord{word: word, prev: prev}, nil
}

func (s *Service) logRating(ctx context.Context, userID uuid.UUID, rating domain.Rating, rated ratedWord) {
	oldDifficulty := "unstudied"
	if rated.prev != nil {
		oldDifficulty = rated.prev.Difficulty.String()
	}
	s.log.InfoContext(ctx, "word reviewed",
		slog.String("user_id", userID.String()),
		slog.String("word_id", rated.word.ID.String()),
		slog.String("rating", rating.String()),
		slog.String("old_difficulty", oldDifficulty),
		slog.String("new_difficulty", rated.word.StudyState.Difficulty.String()),
	)
}

// ResetWord drops the word's study state so it is due again as unstudied.
func (s *Service) ResetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	var word *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		word, err = s.words.GetByIDForUpdate(txCtx, userID, wordID)
		if err != nil {
			return fmt.Errorf("get word: %w", err)
		}
		if word.StudyState == nil {
			return nil
		}
		if err := s.words.ResetStudyState(txCtx, userID, wordID); err != nil {
			return fmt.Errorf("reset study state: %w", err)
		}
		word.StudyState = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "study state reset",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)

	return word, nil
}
