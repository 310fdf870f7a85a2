package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/pkg/ctxutil"
)

// StartSession snapshots the due queue and returns its first card.
// Any previous session of the user is replaced.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*SessionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	queue, err := s.dueWords(ctx, input.Folders)
	if err != nil {
		return nil, err
	}
	if len(queue) == 0 {
		return nil, domain.ErrNothingToReview
	}
	if s.cfg.MaxQueueSize > 0 && len(queue) > s.cfg.MaxQueueSize {
		queue = queue[:s.cfg.MaxQueueSize]
	}

	face := input.Face
	if face == "" {
		face = s.cfg.DefaultFace
	}

	session := &domain.ReviewSession{
		ID:        uuid.New(),
		UserID:    userID,
		Words:     queue,
		Face:      face,
		StartedAt: s.clock.Now(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.InfoContext(ctx, "review session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("words", len(queue)),
		slog.String("face", face.String()),
	)

	return newSessionView(session), nil
}

// CurrentCard returns the card under the cursor of the active session.
func (s *Service) CurrentCard(ctx context.Context) (*SessionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return newSessionView(session), nil
}

// RateCurrent rates the card under the cursor and moves to the next one.
// The cursor wraps to the first card after the last. A word that reaches
// completed leaves the snapshot; once the snapshot is empty the session ends
// with domain.ErrNothingToReview.
//
// The session is saved in the rating transaction, so a stale session fails
// with domain.ErrConflict and its rating is rolled back.
func (s *Service) RateCurrent(ctx context.Context, input RateCurrentInput) (*SessionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	current := session.Current()
	if current == nil {
		return nil, domain.ErrNothingToReview
	}
	if input.WordID != uuid.Nil && input.WordID != current.ID {
		return nil, fmt.Errorf("word %s is not the current card: %w", input.WordID, domain.ErrConflict)
	}

	var rated ratedWord
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rated, err = s.rateWord(txCtx, userID, current.ID, input.Rating)
		if err != nil {
			return err
		}

		session.Reviewed++
		if rated.word.StudyState.IsCompleted() {
			removeCurrent(session)
		} else {
			session.Words[session.Cursor] = *rated.word
			session.Advance()
		}

		if err := s.sessions.Save(txCtx, session); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// The word was deleted after the snapshot was taken.
		return s.dropCurrent(ctx, session)
	case err != nil:
		return nil, err
	}

	s.logRating(ctx, userID, input.Rating, rated)

	if len(session.Words) == 0 {
		return nil, s.endSession(ctx, session)
	}
	return newSessionView(session), nil
}

// dropCurrent removes a word that no longer exists from the snapshot.
func (s *Service) dropCurrent(ctx context.Context, session *domain.ReviewSession) (*SessionView, error) {
	removeCurrent(session)
	if len(session.Words) == 0 {
		return nil, s.endSession(ctx, session)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return newSessionView(session), nil
}

// endSession discards an exhausted session and reports domain.ErrNothingToReview.
func (s *Service) endSession(ctx context.Context, session *domain.ReviewSession) error {
	if err := s.sessions.Delete(ctx, session.UserID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.InfoContext(ctx, "review session finished",
		slog.String("user_id", session.UserID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("reviewed", session.Reviewed),
	)
	return domain.ErrNothingToReview
}

// removeCurrent deletes the word under the cursor. The next word slides
// under the cursor, wrapping to the first past the end.
func removeCurrent(session *domain.ReviewSession) {
	session.Words = slices.Delete(session.Words, session.Cursor, session.Cursor+1)
	if session.Cursor >= len(session.Words) {
		session.Cursor = 0
	}
}

// AbandonSession discards the active session. It is a no-op without one.
func (s *Service) AbandonSession(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete session: %w", err)
	}

	s.log.InfoContext(ctx, "review session abandoned",
		slog.String("user_id", userID.String()),
	)
	return nil
}
