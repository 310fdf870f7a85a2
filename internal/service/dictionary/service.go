package dictionary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/config"
	"github.com/heartmarshall/tango-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, word *domain.Word) (*domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
}

type folderRepo interface {
	GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error)
	Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word and folder management.
type Service struct {
	log     *slog.Logger
	words   wordRepo
	folders folderRepo
	tx      txManager
	cfg     config.DictionaryConfig
}

// NewService creates a new Dictionary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	folders folderRepo,
	tx txManager,
	cfg config.DictionaryConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "dictionary"),
		words:   words,
		folders: folders,
		tx:      tx,
		cfg:     cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
