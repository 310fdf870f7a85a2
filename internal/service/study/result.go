package study

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

// SessionView is what a client needs to render the current flashcard.
type SessionView struct {
	SessionID uuid.UUID
	Word      domain.Word
	Face      domain.CardFace
	Front     string
	Position  int
	Total     int
	Reviewed  int
}

func newSessionView(sess *domain.ReviewSession) *SessionView {
	w := sess.Current()
	if w == nil {
		return nil
	}
	face := ResolveFace(*w, sess.Face)
	return &SessionView{
		SessionID: sess.ID,
		Word:      *w,
		Face:      face,
		Front:     w.Face(face),
		Position:  sess.Cursor,
		Total:     len(sess.Words),
		Reviewed:  sess.Reviewed,
	}
}
