package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tridivya/internal/models"
	"tridivya/internal/storage"
)

const contentColumns = `
	id, kind, title, subtitle, description, image_url, video_url, audio_url,
	cover_url, duration_seconds, difficulty, goal_slug, is_active,
	is_featured, is_trending, extra, created_at, updated_at`

func scanContent(row scanner) (models.Content, error) {
	var (
		base  models.ContentBase
		extra []byte
	)

	err := row.Scan(
		&base.ID,
		&base.Kind,
		&base.Title,
		&base.Subtitle,
		&base.Description,
		&base.ImageURL,
		&base.VideoURL,
		&base.AudioURL,
		&base.CoverURL,
		&base.DurationSeconds,
		&base.Difficulty,
		&base.GoalSlug,
		&base.IsActive,
		&base.IsFeatured,
		&base.IsTrending,
		&extra,
		&base.CreatedAt,
		&base.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c, err := models.NewContent(base.Kind)
	if err != nil {
		return nil, err
	}
	*c.Base() = base

	if fields := c.Extra(); fields != nil && len(extra) > 0 {
		if err = json.Unmarshal(extra, fields); err != nil {
			return nil, fmt.Errorf("failed to decode %s fields: %w", base.Kind, err)
		}
	}

	return c, nil
}

func extraJSON(c models.Content) ([]byte, error) {
	fields := c.Extra()
	if fields == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(fields)
}

func (s *Storage) CreateContent(ctx context.Context, c models.Content) error {
	const op = "storage.postgres.CreateContent"

	b := c.Base()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	extra, err := extraJSON(c)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO content_items (
			id, kind, title, subtitle, description, image_url, video_url,
			audio_url, cover_url, duration_seconds, difficulty, goal_slug,
			is_active, is_featured, is_trending, extra
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`

	err = s.DB.QueryRowContext(ctx, query,
		b.ID, b.Kind, b.Title, b.Subtitle, b.Description, b.ImageURL, b.VideoURL,
		b.AudioURL, b.CoverURL, b.DurationSeconds, b.Difficulty, b.GoalSlug,
		b.IsActive, b.IsFeatured, b.IsTrending, extra,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpsertContentByTitle inserts c, or overwrites the item of the same kind
// and title. Used by the seeder.
func (s *Storage) UpsertContentByTitle(ctx context.Context, c models.Content) (bool, error) {
	const op = "storage.postgres.UpsertContentByTitle"

	b := c.Base()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	extra, err := extraJSON(c)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO content_items (
			id, kind, title, subtitle, description, image_url, video_url,
			audio_url, cover_url, duration_seconds, difficulty, goal_slug,
			is_active, is_featured, is_trending, extra
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (kind, title) DO UPDATE SET
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			video_url = EXCLUDED.video_url,
			audio_url = EXCLUDED.audio_url,
			cover_url = EXCLUDED.cover_url,
			duration_seconds = EXCLUDED.duration_seconds,
			difficulty = EXCLUDED.difficulty,
			goal_slug = EXCLUDED.goal_slug,
			is_active = EXCLUDED.is_active,
			is_featured = EXCLUDED.is_featured,
			is_trending = EXCLUDED.is_trending,
			extra = EXCLUDED.extra,
			updated_at = NOW()
		RETURNING id, (xmax = 0) AS inserted`

	var inserted bool
	err = s.DB.QueryRowContext(ctx, query,
		b.ID, b.Kind, b.Title, b.Subtitle, b.Description, b.ImageURL, b.VideoURL,
		b.AudioURL, b.CoverURL, b.DurationSeconds, b.Difficulty, b.GoalSlug,
		b.IsActive, b.IsFeatured, b.IsTrending, extra,
	).Scan(&b.ID, &inserted)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return inserted, nil
}

func (s *Storage) GetContent(ctx context.Context, kind models.ContentKind, id uuid.UUID) (models.Content, error) {
	const op = "storage.postgres.GetContent"

	query := `SELECT ` + contentColumns + ` FROM content_items WHERE kind = $1 AND id = $2`

	c, err := scanContent(s.DB.QueryRowContext(ctx, query, kind, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrContentNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Storage) ListContent(ctx context.Context, kind models.ContentKind, f storage.ContentFilter) ([]models.Content, error) {
	const op = "storage.postgres.ListContent"

	where := []string{"kind = $1"}
	args := []any{kind}

	if !f.IncludeInactive {
		where = append(where, "is_active")
	}
	if f.GoalSlug != "" {
		args = append(args, f.GoalSlug)
		where = append(where, fmt.Sprintf("goal_slug = $%d", len(args)))
	}
	if f.Difficulty != "" {
		args = append(args, f.Difficulty)
		where = append(where, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if f.Featured {
		where = append(where, "is_featured")
	}
	if f.Trending {
		where = append(where, "is_trending")
	}

	query := `SELECT ` + contentColumns + ` FROM content_items
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC`

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	items, err := s.queryContent(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// SearchContent matches q against title, subtitle and description of
// active items. An empty kind searches every kind.
func (s *Storage) SearchContent(ctx context.Context, q string, kind models.ContentKind, limit int) ([]models.Content, error) {
	const op = "storage.postgres.SearchContent"

	query := `SELECT ` + contentColumns + ` FROM content_items
		WHERE is_active
		AND (title ILIKE $1 OR subtitle ILIKE $1 OR description ILIKE $1)
		AND ($2 = '' OR kind = $2)
		ORDER BY is_featured DESC, title ASC
		LIMIT $3`

	items, err := s.queryContent(ctx, query, "%"+escapeLike(q)+"%", string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *Storage) queryContent(ctx context.Context, query string, args ...any) ([]models.Content, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Content, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		items = append(items, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content: %w", err)
	}

	return items, nil
}

func (s *Storage) UpdateContent(ctx context.Context, c models.Content) error {
	const op = "storage.postgres.UpdateContent"

	b := c.Base()

	extra, err := extraJSON(c)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE content_items
		SET title = $3, subtitle = $4, description = $5, image_url = $6,
			video_url = $7, audio_url = $8, cover_url = $9,
			duration_seconds = $10, difficulty = $11, goal_slug = $12,
			is_active = $13, is_featured = $14, is_trending = $15,
			extra = $16, updated_at = NOW()
		WHERE kind = $1 AND id = $2
		RETURNING created_at, updated_at`

	err = s.DB.QueryRowContext(ctx, query,
		b.Kind, b.ID, b.Title, b.Subtitle, b.Description, b.ImageURL,
		b.VideoURL, b.AudioURL, b.CoverURL, b.DurationSeconds, b.Difficulty,
		b.GoalSlug, b.IsActive, b.IsFeatured, b.IsTrending, extra,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrContentNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteContent(ctx context.Context, kind models.ContentKind, id uuid.UUID) error {
	const op = "storage.postgres.DeleteContent"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM content_items WHERE kind = $1 AND id = $2`, kind, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return storage.ErrContentNotFound
	}

	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
