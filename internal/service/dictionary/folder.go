package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/pkg/ctxutil"
)

// CreateFolder creates a folder, optionally under an existing parent.
func (s *Service) CreateFolder(ctx context.Context, input CreateFolderInput) (*domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.folders.GetByID(ctx, userID, *input.ParentID); err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
	}

	created, err := s.folders.Create(ctx, &domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		ParentID:  input.ParentID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder created",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", created.ID.String()),
	)

	return created, nil
}

// ListFolders returns all folders of the user ordered by name.
func (s *Service) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	folders, err := s.folders.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}
