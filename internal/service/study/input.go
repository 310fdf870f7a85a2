package study

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

const maxQueueLimit = 500

// GetQueueInput holds the parameters for fetching the due queue.
type GetQueueInput struct {
	Folders []string
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i *GetQueueInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxQueueLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewWordInput holds the parameters for rating a single word.
type ReviewWordInput struct {
	WordID uuid.UUID
	Rating domain.Rating
}

// Validate checks all fields and collects all errors.
func (i *ReviewWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be one of hard, good, easy"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartSessionInput holds the parameters for starting a review session.
type StartSessionInput struct {
	Folders []string
	Face    domain.CardFace // empty means the configured default
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.Face != "" && !i.Face.IsValid() {
		errs = append(errs, domain.FieldError{Field: "face", Message: "must be one of term, translation, alt_translation, image"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RateCurrentInput holds the rating for the card under the session cursor.
type RateCurrentInput struct {
	Rating domain.Rating
	// WordID, when set, must match the current card.
	WordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *RateCurrentInput) Validate() error {
	var errs []domain.FieldError

	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be one of hard, good, easy"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
