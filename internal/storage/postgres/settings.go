package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"tridivya/internal/models"
)

// GetSettings returns the stored settings, or the defaults when the user
// has never saved any.
func (s *Storage) GetSettings(ctx context.Context, userID uuid.UUID) (*models.Settings, error) {
	const op = "storage.postgres.GetSettings"

	var privacy, notifications, appearance, data []byte

	err := s.DB.QueryRowContext(ctx, `
		SELECT privacy, notifications, appearance, data
		FROM user_settings
		WHERE user_id = $1`, userID).Scan(&privacy, &notifications, &appearance, &data)
	if err != nil {
		if isNoRows(err) {
			def := models.DefaultSettings(userID)
			return &def, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	settings := models.DefaultSettings(userID)
	for _, part := range []struct {
		raw []byte
		dst any
	}{
		{privacy, &settings.Privacy},
		{notifications, &settings.Notifications},
		{appearance, &settings.Appearance},
		{data, &settings.Data},
	} {
		if err = json.Unmarshal(part.raw, part.dst); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &settings, nil
}

func (s *Storage) SaveSettings(ctx context.Context, settings *models.Settings) error {
	const op = "storage.postgres.SaveSettings"

	privacy, _ := json.Marshal(settings.Privacy)
	notifications, _ := json.Marshal(settings.Notifications)
	appearance, _ := json.Marshal(settings.Appearance)
	data, _ := json.Marshal(settings.Data)

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, privacy, notifications, appearance, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			privacy = EXCLUDED.privacy,
			notifications = EXCLUDED.notifications,
			appearance = EXCLUDED.appearance,
			data = EXCLUDED.data,
			updated_at = NOW()`,
		settings.UserID, privacy, notifications, appearance, data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
