package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tridivya/internal/models"
	"tridivya/internal/storage"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isPQCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func (s *Storage) SaveContent(ctx context.Context, userID, contentID uuid.UUID, kind models.ContentKind) (*models.SavedContent, error) {
	const op = "storage.postgres.SaveContent"

	// the content must exist and be of the claimed kind
	query := `
		INSERT INTO saved_content (user_id, content_id, content_type)
		SELECT $1, id, kind FROM content_items WHERE id = $2 AND kind = $3
		RETURNING user_id, content_id, content_type, created_at`

	var sc models.SavedContent
	err := s.DB.QueryRowContext(ctx, query, userID, contentID, kind).
		Scan(&sc.UserID, &sc.ContentID, &sc.ContentType, &sc.CreatedAt)
	if err != nil {
		switch {
		case isNoRows(err):
			return nil, storage.ErrContentNotFound
		case isPQCode(err, pqUniqueViolation):
			return nil, storage.ErrAlreadySaved
		case isPQCode(err, pqForeignKeyViolation):
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sc, nil
}

func (s *Storage) UnsaveContent(ctx context.Context, userID, contentID uuid.UUID, kind models.ContentKind) error {
	const op = "storage.postgres.UnsaveContent"

	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM saved_content
		WHERE user_id = $1 AND content_id = $2 AND content_type = $3`,
		userID, contentID, kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return storage.ErrNotSaved
	}

	return nil
}

// ListSavedContent returns the items a user saved, newest first.
func (s *Storage) ListSavedContent(ctx context.Context, userID uuid.UUID) ([]models.Content, error) {
	const op = "storage.postgres.ListSavedContent"

	query := `SELECT ` + prefixed("c", contentColumns) + `
		FROM saved_content sc
		JOIN content_items c ON c.id = sc.content_id
		WHERE sc.user_id = $1
		ORDER BY sc.created_at DESC`

	items, err := s.queryContent(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
