package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSession is a snapshot of the due queue walked with a cursor.
// The snapshot is not re-filtered while the session lives.
type ReviewSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Words     []Word
	Cursor    int
	Face      CardFace
	Reviewed  int
	Version   int
	StartedAt time.Time
}

// Current returns the word under the cursor, or nil for an empty snapshot.
func (s *ReviewSession) Current() *Word {
	if len(s.Words) == 0 {
		return nil
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Words) {
		s.Cursor = 0
	}
	return &s.Words[s.Cursor]
}

// Advance moves the cursor forward, wrapping to the first word past the end.
func (s *ReviewSession) Advance() {
	if len(s.Words) == 0 {
		return
	}
	s.Cursor++
	if s.Cursor >= len(s.Words) {
		s.Cursor = 0
	}
}

// Clone returns a copy that shares no slices with s.
func (s *ReviewSession) Clone() *ReviewSession {
	c := *s
	c.Words = make([]Word, len(s.Words))
	copy(c.Words, s.Words)
	return &c
}

// StudyConfig holds scheduler settings shared by all users (pure domain type).
type StudyConfig struct {
	Timezone     *time.Location
	DefaultFace  CardFace
	MaxQueueSize int
}
