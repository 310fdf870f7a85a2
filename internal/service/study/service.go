package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	UpdateStudyState(ctx context.Context, userID, wordID uuid.UUID, state domain.StudyState) error
	ResetStudyState(ctx context.Context, userID, wordID uuid.UUID) error
	CountByDifficulty(ctx context.Context, userID uuid.UUID) (domain.WordStats, error)
}

type sessionStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ReviewSession, error)
	Save(ctx context.Context, session *domain.ReviewSession) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review scheduling business logic.
type Service struct {
	words    wordRepo
	sessions sessionStore
	tx       txManager
	clock    clock
	log      *slog.Logger
	cfg      domain.StudyConfig
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	sessions sessionStore,
	tx txManager,
	cfg domain.StudyConfig,
) *Service {
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	if !cfg.DefaultFace.IsValid() {
		cfg.DefaultFace = domain.CardFaceTerm
	}
	return &Service{
		words:    words,
		sessions: sessions,
		tx:       tx,
		clock:    realClock{},
		log:      log.With("service", "study"),
		cfg:      cfg,
	}
}

// nextStateFor runs the scheduler for w, logging records it had to repair.
func (s *Service) nextStateFor(ctx context.Context, w *domain.Word, rating domain.Rating, now time.Time) (domain.StudyState, error) {
	if w.StudyState != nil {
		if err := w.StudyState.Validate(); err != nil {
			s.warnMalformed(ctx, w, err, "rating")
		}
	}
	return NextState(w.StudyState, rating, now, s.cfg.Timezone)
}

// flagMalformed logs the states the selector treats as unstudied.
func (s *Service) flagMalformed(ctx context.Context, words []domain.Word) {
	for i := range words {
		st := words[i].StudyState
		if st == nil || st.IsCompleted() {
			continue
		}
		if err := st.Validate(); err != nil {
			s.warnMalformed(ctx, &words[i], err, "selection")
		}
	}
}

func (s *Service) warnMalformed(ctx context.Context, w *domain.Word, err error, stage string) {
	s.log.WarnContext(ctx, "malformed study state",
		slog.String("word_id", w.ID.String()),
		slog.String("stage", stage),
		slog.String("reason", err.Error()),
	)
}
