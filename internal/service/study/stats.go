package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/pkg/ctxutil"
)

// GetStats returns word counts per tier and the number of words due today.
func (s *Service) GetStats(ctx context.Context) (domain.WordStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.WordStats{}, domain.ErrUnauthorized
	}

	stats, err := s.words.CountByDifficulty(ctx, userID)
	if err != nil {
		return domain.WordStats{}, fmt.Errorf("count by difficulty: %w", err)
	}

	due, err := s.dueWords(ctx, nil)
	if err != nil {
		return domain.WordStats{}, err
	}
	stats.DueToday = len(due)

	return stats, nil
}
