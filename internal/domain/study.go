package domain

import (
	"errors"
	"time"
)

// StudyState is the per-word review record.
type StudyState struct {
	Difficulty      Difficulty
	NextReviewAt    *time.Time // nil when completed
	ConsecutiveEasy int
	ConsecutiveGood int
	LastReviewAt    time.Time
}

// IsCompleted reports whether the word left the review rotation.
func (s *StudyState) IsCompleted() bool {
	return s.Difficulty == DifficultyCompleted
}

// Validate reports why a stored state cannot drive a transition.
func (s *StudyState) Validate() error {
	switch {
	case !s.Difficulty.IsValid():
		return errors.New("unknown difficulty " + string(s.Difficulty))
	case s.ConsecutiveEasy < 0 || s.ConsecutiveGood < 0:
		return errors.New("negative counter")
	case s.ConsecutiveEasy > 0 && s.ConsecutiveGood > 0:
		return errors.New("both counters set")
	case s.NextReviewAt == nil && !s.IsCompleted():
		return errors.New("missing next review date")
	}
	return nil
}

// WordStats holds word counts per review tier for a user.
type WordStats struct {
	Total     int
	Unstudied int
	Hard      int
	Good      int
	Easy      int
	Completed int
	DueToday  int
}

