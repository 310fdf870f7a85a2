package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NoFolderKey selects words that belong to no folder.
const NoFolderKey = "no-folder"

// FolderFilter is the set of folders a review session draws from.
// The zero value selects every word.
type FolderFilter struct {
	IDs      map[uuid.UUID]struct{}
	NoFolder bool
}

// ParseFolderFilter builds a filter from folder IDs and the no-folder key.
func ParseFolderFilter(values []string) (FolderFilter, error) {
	var (
		f    FolderFilter
		errs []FieldError
	)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if v == NoFolderKey {
			f.NoFolder = true
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, FieldError{Field: "folders", Message: "invalid folder id " + v})
			continue
		}
		if f.IDs == nil {
			f.IDs = make(map[uuid.UUID]struct{})
		}
		f.IDs[id] = struct{}{}
	}
	if len(errs) > 0 {
		return FolderFilter{}, NewValidationErrors(errs)
	}
	return f, nil
}

// IsEmpty reports whether the filter restricts nothing.
func (f FolderFilter) IsEmpty() bool {
	return len(f.IDs) == 0 && !f.NoFolder
}

// Matches reports whether a word with the given folder membership passes.
func (f FolderFilter) Matches(folders []uuid.UUID) bool {
	if f.IsEmpty() {
		return true
	}
	if len(folders) == 0 {
		return f.NoFolder
	}
	for _, id := range folders {
		if _, ok := f.IDs[id]; ok {
			return true
		}
	}
	return false
}

// WordFilter contains filtering/pagination parameters for word listings.
type WordFilter struct {
	Search   *string
	FolderID *uuid.UUID
	Unfiled  bool
	Limit    int // 0 means unlimited
	Offset   int
}
