package models

import "github.com/google/uuid"

type PrivacySettings struct {
	ProfileVisibility string `json:"profile_visibility" validate:"omitempty,oneof=public private"`
	ShowActivity      bool   `json:"show_activity"`
}

type NotificationSettings struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	SessionReminders bool `json:"session_reminders"`
}

type AppearanceSettings struct {
	Theme    string `json:"theme" validate:"omitempty,oneof=light dark system"`
	Language string `json:"language"`
}

type DataSettings struct {
	AllowAnalytics bool `json:"allow_analytics"`
}

type Settings struct {
	UserID        uuid.UUID            `json:"user_id"`
	Privacy       PrivacySettings      `json:"privacy"`
	Notifications NotificationSettings `json:"notifications"`
	Appearance    AppearanceSettings   `json:"appearance"`
	Data          DataSettings         `json:"data"`
}

// DefaultSettings is what a user sees before saving anything.
func DefaultSettings(userID uuid.UUID) Settings {
	return Settings{
		UserID:        userID,
		Privacy:       PrivacySettings{ProfileVisibility: "public", ShowActivity: true},
		Notifications: NotificationSettings{Email: true, Push: false, SessionReminders: true},
		Appearance:    AppearanceSettings{Theme: "system", Language: "en"},
		Data:          DataSettings{AllowAnalytics: true},
	}
}
