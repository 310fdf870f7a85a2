package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/internal/service/study"
)

type studyService interface {
	GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]domain.Word, error)
	GetStats(ctx context.Context) (domain.WordStats, error)
	ReviewWord(ctx context.Context, input study.ReviewWordInput) (*domain.Word, error)
	ResetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	StartSession(ctx context.Context, input study.StartSessionInput) (*study.SessionView, error)
	CurrentCard(ctx context.Context) (*study.SessionView, error)
	RateCurrent(ctx context.Context, input study.RateCurrentInput) (*study.SessionView, error)
	AbandonSession(ctx context.Context) error
}

// StudyHandler serves review queue and session endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type reviewRequest struct {
	Rating string `json:"rating" validate:"required,oneof=hard good easy"`
}

type startSessionRequest struct {
	Folders []string `json:"folders"`
	Face    string   `json:"face" validate:"omitempty,oneof=term translation alt_translation image"`
}

type rateCurrentRequest struct {
	Rating string     `json:"rating" validate:"required,oneof=hard good easy"`
	WordID *uuid.UUID `json:"word_id"`
}

// Queue handles GET /api/study/queue?folder=...&folder=no-folder&limit=...
func (h *StudyHandler) Queue(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.GetStudyQueue(r.Context(), study.GetQueueInput{
		Folders: r.URL.Query()["folder"],
		Limit:   limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"words": toWordResponses(words)})
}

// Stats handles GET /api/study/stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Review handles POST /api/words/{id}/review.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.ReviewWord(r.Context(), study.ReviewWordInput{
		WordID: id,
		Rating: domain.Rating(req.Rating),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Reset handles POST /api/words/{id}/reset.
func (h *StudyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.ResetWord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// StartSession handles POST /api/study/session. An empty due queue is 204.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.StartSession(r.Context(), study.StartSessionInput{
		Folders: req.Folders,
		Face:    domain.CardFace(req.Face),
	})
	if err != nil {
		h.sessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// CurrentCard handles GET /api/study/session.
func (h *StudyHandler) CurrentCard(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.CurrentCard(r.Context())
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// RateCurrent handles POST /api/study/session/rate.
func (h *StudyHandler) RateCurrent(w http.ResponseWriter, r *http.Request) {
	var req rateCurrentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := study.RateCurrentInput{Rating: domain.Rating(req.Rating)}
	if req.WordID != nil {
		input.WordID = *req.WordID
	}

	view, err := h.svc.RateCurrent(r.Context(), input)
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// AbandonSession handles DELETE /api/study/session.
func (h *StudyHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AbandonSession(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudyHandler) sessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNothingToReview) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	handleError(h.log, w, r, err)
}
