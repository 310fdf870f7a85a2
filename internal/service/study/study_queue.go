package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/pkg/ctxutil"
)

// GetStudyQueue returns the words due today in the selected folders.
// An empty result is not an error.
func (s *Service) GetStudyQueue(ctx context.Context, input GetQueueInput) ([]domain.Word, error) {
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

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.MaxQueueSize
	}
	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}

	s.log.InfoContext(ctx, "study queue generated",
		slog.String("user_id", userID.String()),
		slog.Int("total", len(queue)),
	)

	return queue, nil
}

// dueWords loads the user's words and applies the selector.
func (s *Service) dueWords(ctx context.Context, folders []string) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter, err := domain.ParseFolderFilter(folders)
	if err != nil {
		return nil, err
	}

	words, err := s.words.List(ctx, userID, domain.WordFilter{})
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	s.flagMalformed(ctx, words)
	return SelectDue(words, filter, s.clock.Now(), s.cfg.Timezone), nil
}
