package dictionary

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

const (
	maxFieldLen = 500
	maxListLen  = 50
)

// CreateWordInput holds the parameters for adding a word.
type CreateWordInput struct {
	Term              string
	Reading           string
	Translation       string
	AltTranslation    string
	Phonetic          string
	OtherTranslations []string
	ImageURL          string
	Tags              []string
	Folders           []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateWordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Term) == "" {
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	}

	fields := map[string]string{
		"term":            i.Term,
		"reading":         i.Reading,
		"translation":     i.Translation,
		"alt_translation": i.AltTranslation,
		"phonetic":        i.Phonetic,
	}
	for name, v := range fields {
		if len(v) > maxFieldLen {
			errs = append(errs, domain.FieldError{Field: name, Message: "too long (max 500)"})
		}
	}
	if len(i.ImageURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long (max 2048)"})
	}
	if len(i.OtherTranslations) > maxListLen {
		errs = append(errs, domain.FieldError{Field: "other_translations", Message: "too many (max 50)"})
	}
	if len(i.Tags) > maxListLen {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 50)"})
	}
	for _, id := range i.Folders {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "folders", Message: "contains empty id"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListWordsInput holds search and pagination parameters.
type ListWordsInput struct {
	Search   *string
	FolderID *uuid.UUID
	Unfiled  bool
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i *ListWordsInput) Validate() error {
	var errs []domain.FieldError

	if i.Search != nil && len(*i.Search) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long (max 500)"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.FolderID != nil && i.Unfiled {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "cannot be combined with unfiled"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	Name     string
	ParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateFolderInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if name == domain.NoFolderKey {
		errs = append(errs, domain.FieldError{Field: "name", Message: "reserved"})
	}
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
