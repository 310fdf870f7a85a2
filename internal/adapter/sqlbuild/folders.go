package sqlbuild

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/domain"
)

var folderColumns = []string{"id", "user_id", "name", "parent_id", "created_at"}

// SelectFolders lists a user's folders by name.
func (d Dialect) SelectFolders(userID uuid.UUID) (string, []any, error) {
	return d.builder().
		Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", "id").
		ToSql()
}

// SelectFolder fetches one owned folder.
func (d Dialect) SelectFolder(userID, folderID uuid.UUID) (string, []any, error) {
	return d.builder().
		Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"id": folderID, "user_id": userID}).
		ToSql()
}

// InsertFolder stores a folder row.
func (d Dialect) InsertFolder(f *domain.Folder) (string, []any, error) {
	return d.builder().
		Insert("folders").
		Columns(folderColumns...).
		Values(f.ID, f.UserID, f.Name, f.ParentID, f.CreatedAt.UTC()).
		ToSql()
}

// ScanFolder reads a row produced by SelectFolders or SelectFolder.
func ScanFolder(row RowScanner) (domain.Folder, error) {
	var f domain.Folder
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.ParentID, &f.CreatedAt)
	return f, err
}
