package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/internal/service/dictionary"
)

type dictionaryService interface {
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context, input dictionary.ListWordsInput) ([]domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	CreateFolder(ctx context.Context, input dictionary.CreateFolderInput) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]domain.Folder, error)
}

// DictionaryHandler serves word and folder endpoints.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

type createWordRequest struct {
	Term              string      `json:"term" validate:"required,max=500"`
	Reading           string      `json:"reading" validate:"max=500"`
	Translation       string      `json:"translation" validate:"max=500"`
	AltTranslation    string      `json:"alt_translation" validate:"max=500"`
	Phonetic          string      `json:"phonetic" validate:"max=500"`
	OtherTranslations []string    `json:"other_translations" validate:"max=50"`
	ImageURL          string      `json:"image_url" validate:"omitempty,url,max=2048"`
	Tags              []string    `json:"tags" validate:"max=50"`
	Folders           []uuid.UUID `json:"folders"`
}

type createFolderRequest struct {
	Name     string     `json:"name" validate:"required,max=100"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// CreateWord handles POST /api/words.
func (h *DictionaryHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.CreateWord(r.Context(), dictionary.CreateWordInput{
		Term:              req.Term,
		Reading:           req.Reading,
		Translation:       req.Translation,
		AltTranslation:    req.AltTranslation,
		Phonetic:          req.Phonetic,
		OtherTranslations: req.OtherTranslations,
		ImageURL:          req.ImageURL,
		Tags:              req.Tags,
		Folders:           req.Folders,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// GetWord handles GET /api/words/{id}.
func (h *DictionaryHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// ListWords handles GET /api/words?search=&folder=&unfiled=&limit=&offset=.
func (h *DictionaryHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var input dictionary.ListWordsInput

	if s := q.Get("search"); s != "" {
		input.Search = &s
	}
	if raw := q.Get("folder"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("folder", "must be a UUID"))
			return
		}
		input.FolderID = &id
	}
	if raw := q.Get("unfiled"); raw != "" {
		unfiled, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("unfiled", "must be a boolean"))
			return
		}
		input.Unfiled = unfiled
	}

	var err error
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.ListWords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"words": toWordResponses(words)})
}

// DeleteWord handles DELETE /api/words/{id}.
func (h *DictionaryHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateFolder handles POST /api/folders.
func (h *DictionaryHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	folder, err := h.svc.CreateFolder(r.Context(), dictionary.CreateFolderInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFolderResponse(*folder))
}

// ListFolders handles GET /api/folders.
func (h *DictionaryHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}
	writeJSON(w, http.StatusOK, map[string]any{"folders": out})
}
