package study

import (
	"time"

	"github.com/heartmarshall/tango-backend/internal/domain"
)

// SelectDue returns the words eligible for review on today, in input order.
//
// A word is eligible when it has a term, passes the folder filter and is due.
// An empty filter does not restrict by folder.
func SelectDue(words []domain.Word, filter domain.FolderFilter, today time.Time, tz *time.Location) []domain.Word {
	due := make([]domain.Word, 0, len(words))
	for i := range words {
		w := &words[i]
		if !w.IsReviewable() {
			continue
		}
		if !filter.Matches(w.Folders) {
			continue
		}
		if !IsDue(w.StudyState, today, tz) {
			continue
		}
		due = append(due, *w)
	}
	return due
}

// IsDue reports whether a word with the given state should be reviewed on today.
func IsDue(state *domain.StudyState, today time.Time, tz *time.Location) bool {
	if state == nil {
		return true
	}
	if state.IsCompleted() {
		return false
	}
	if state.Validate() != nil {
		// Malformed records behave like unstudied words; the service logs them.
		return true
	}
	return OnOrBefore(*state.NextReviewAt, today, tz)
}
