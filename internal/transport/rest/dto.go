package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/internal/service/study"
)

type wordResponse struct {
	ID                uuid.UUID           `json:"id"`
	Term              string              `json:"term"`
	Reading           string              `json:"reading,omitempty"`
	Translation       string              `json:"translation,omitempty"`
	AltTranslation    string              `json:"alt_translation,omitempty"`
	Phonetic          string              `json:"phonetic,omitempty"`
	OtherTranslations []string            `json:"other_translations"`
	ImageURL          string              `json:"image_url,omitempty"`
	Tags              []string            `json:"tags"`
	Folders           []uuid.UUID         `json:"folders"`
	StudyState        *studyStateResponse `json:"study_state"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type studyStateResponse struct {
	Difficulty      string     `json:"difficulty"`
	NextReviewAt    *time.Time `json:"next_review_at"`
	ConsecutiveEasy int        `json:"consecutive_easy"`
	ConsecutiveGood int        `json:"consecutive_good"`
	LastReviewAt    time.Time  `json:"last_review_at"`
}

type folderResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
}

type sessionResponse struct {
	SessionID uuid.UUID    `json:"session_id"`
	Face      string       `json:"face"`
	Front     string       `json:"front"`
	Position  int          `json:"position"`
	Total     int          `json:"total"`
	Reviewed  int          `json:"reviewed"`
	Word      wordResponse `json:"word"`
}

type statsResponse struct {
	Total     int `json:"total"`
	Unstudied int `json:"unstudied"`
	Hard      int `json:"hard"`
	Good      int `json:"good"`
	Easy      int `json:"easy"`
	Completed int `json:"completed"`
	DueToday  int `json:"due_today"`
}

func toWordResponse(w domain.Word) wordResponse {
	resp := wordResponse{
		ID:                w.ID,
		Term:              w.Term,
		Reading:           w.Reading,
		Translation:       w.Translation,
		AltTranslation:    w.AltTranslation,
		Phonetic:          w.Phonetic,
		OtherTranslations: nonNil(w.OtherTranslations),
		ImageURL:          w.ImageURL,
		Tags:              nonNil(w.Tags),
		Folders:           nonNil(w.Folders),
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
	if st := w.StudyState; st != nil {
		resp.StudyState = &studyStateResponse{
			Difficulty:      st.Difficulty.String(),
			NextReviewAt:    st.NextReviewAt,
			ConsecutiveEasy: st.ConsecutiveEasy,
			ConsecutiveGood: st.ConsecutiveGood,
			LastReviewAt:    st.LastReviewAt,
		}
	}
	return resp
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, toWordResponse(w))
	}
	return out
}

func toFolderResponse(f domain.Folder) folderResponse {
	return folderResponse{ID: f.ID, Name: f.Name, ParentID: f.ParentID, CreatedAt: f.CreatedAt}
}

func toSessionResponse(v *study.SessionView) sessionResponse {
	return sessionResponse{
		SessionID: v.SessionID,
		Face:      v.Face.String(),
		Front:     v.Front,
		Position:  v.Position,
		Total:     v.Total,
		Reviewed:  v.Reviewed,
		Word:      toWordResponse(v.Word),
	}
}

func toStatsResponse(s domain.WordStats) statsResponse {
	return statsResponse(s)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
