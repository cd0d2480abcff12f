package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tridivya/internal/models"
	"tridivya/internal/storage"
)

const announcementColumns = `id, title, message, tone, status, scheduled_at, created_at, updated_at`

func scanAnnouncement(row scanner) (*models.Announcement, error) {
	var a models.Announcement

	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Message,
		&a.Tone,
		&a.Status,
		&a.ScheduledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Storage) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	const op = "storage.postgres.CreateAnnouncement"

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO announcements (id, title, message, tone, status, scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		a.ID, a.Title, a.Message, a.Tone, a.Status, a.ScheduledAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetAnnouncement(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	const op = "storage.postgres.GetAnnouncement"

	a, err := scanAnnouncement(s.DB.QueryRowContext(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// ListAnnouncements lists announcements, newest first. With publishedOnly
// set, scheduled ones whose time has come are included too.
func (s *Storage) ListAnnouncements(ctx context.Context, publishedOnly bool) ([]models.Announcement, error) {
	const op = "storage.postgres.ListAnnouncements"

	query := `SELECT ` + announcementColumns + ` FROM announcements`
	if publishedOnly {
		query += ` WHERE status = 'published' OR (status = 'scheduled' AND scheduled_at <= NOW())`
	}
	query += ` ORDER BY COALESCE(scheduled_at, created_at) DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := make([]models.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan announcement: %w", op, err)
		}
		list = append(list, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *Storage) UpdateAnnouncement(ctx context.Context, a *models.Announcement) error {
	const op = "storage.postgres.UpdateAnnouncement"

	err := s.DB.QueryRowContext(ctx, `
		UPDATE announcements
		SET title = $2, message = $3, tone = $4, status = $5, scheduled_at = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		a.ID, a.Title, a.Message, a.Tone, a.Status, a.ScheduledAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return storage.ErrAnnouncementNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PublishDueAnnouncements flips scheduled announcements whose time has passed.
func (s *Storage) PublishDueAnnouncements(ctx context.Context) (int64, error) {
	const op = "storage.postgres.PublishDueAnnouncements"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE announcements
		SET status = 'published', updated_at = NOW()
		WHERE status = 'scheduled' AND scheduled_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.RowsAffected()
}

func (s *Storage) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteAnnouncement"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return storage.ErrAnnouncementNotFound
	}

	return nil
}
