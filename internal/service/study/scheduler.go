package study

import (
	"time"

	"github.com/heartmarshall/tango-backend/internal/domain"
)

// Consecutive same ratings needed to move up one tier.
const promoteAfter = 2

// Review intervals in calendar days, keyed by the tier a rating lands in.
var reviewInterval = map[domain.Difficulty]int{
	domain.DifficultyHard: 1,
	domain.DifficultyGood: 3,
	domain.DifficultyEasy: 7,
}

// NextState computes the study state that follows rating the word at now.
//
// current may be nil for a word that has never been rated. A state that fails
// Validate is handled the same way. The returned state carries no due date
// when the word reaches the completed tier.
func NextState(current *domain.StudyState, rating domain.Rating, now time.Time, tz *time.Location) (domain.StudyState, error) {
	if !rating.IsValid() {
		return domain.StudyState{}, domain.NewValidationError("rating", "must be one of hard, good, easy")
	}

	var prev domain.StudyState
	if current != nil && current.Validate() == nil {
		prev = *current
	}

	next := domain.StudyState{LastReviewAt: now}

	switch rating {
	case domain.RatingHard:
		next.Difficulty = domain.DifficultyHard

	case domain.RatingGood:
		next.Difficulty = domain.DifficultyGood
		next.ConsecutiveGood = 1
		if prev.Difficulty == domain.DifficultyGood {
			next.ConsecutiveGood = prev.ConsecutiveGood + 1
			if next.ConsecutiveGood >= promoteAfter {
				next.Difficulty = domain.DifficultyEasy
				next.ConsecutiveGood = 0
			}
		}

	case domain.RatingEasy:
		next.Difficulty = domain.DifficultyEasy
		next.ConsecutiveEasy = 1
		if prev.Difficulty == domain.DifficultyEasy {
			next.ConsecutiveEasy = prev.ConsecutiveEasy + 1
			if next.ConsecutiveEasy >= promoteAfter {
				// The easy counter is left as is on completion.
				next.Difficulty = domain.DifficultyCompleted
			}
		}
	}

	if days, ok := reviewInterval[next.Difficulty]; ok {
		due := AddDays(now, tz, days)
		next.NextReviewAt = &due
	}

	return next, nil
}
