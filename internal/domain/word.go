package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary item owned by a user.
type Word struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Term              string
	Reading           string
	Translation       string
	AltTranslation    string
	Phonetic          string
	OtherTranslations []string
	ImageURL          string
	Tags              []string
	Folders           []uuid.UUID
	StudyState        *StudyState // nil until the first rating
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsReviewable reports whether the word has a primary term set. A term of
// only spaces still counts.
func (w *Word) IsReviewable() bool {
	return w.Term != ""
}

// Face returns the content of the given card face.
func (w *Word) Face(f CardFace) string {
	switch f {
	case CardFaceTerm:
		return w.Term
	case CardFaceTranslation:
		return w.Translation
	case CardFaceAltTranslation:
		return w.AltTranslation
	case CardFaceImage:
		return w.ImageURL
	}
	return ""
}

// Folder groups words. Only membership is used by the review scheduler.
type Folder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	ParentID  *uuid.UUID
	CreatedAt time.Time
}
