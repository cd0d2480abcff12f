package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type AnnouncementTone string

const (
	ToneCalm      AnnouncementTone = "calm"
	ToneEmpower   AnnouncementTone = "empower"
	ToneCelebrate AnnouncementTone = "celebrate"
)

type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "draft"
	AnnouncementScheduled AnnouncementStatus = "scheduled"
	AnnouncementPublished AnnouncementStatus = "published"
)

type Announcement struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Message     string             `json:"message"`
	Tone        AnnouncementTone   `json:"tone"`
	Status      AnnouncementStatus `json:"status"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

var announcementMoves = map[AnnouncementStatus][]AnnouncementStatus{
	AnnouncementDraft:     {AnnouncementDraft, AnnouncementScheduled, AnnouncementPublished},
	AnnouncementScheduled: {AnnouncementScheduled, AnnouncementPublished},
	AnnouncementPublished: {AnnouncementPublished},
}

// CanMoveTo reports whether an announcement may go from s to next.
// Publishing is final.
func (s AnnouncementStatus) CanMoveTo(next AnnouncementStatus) bool {
	for _, allowed := range announcementMoves[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

var ErrScheduleNotInFuture = errors.New("scheduled_at must be in the future")

// CheckSchedule requires a future scheduled_at on scheduled announcements.
func (a *Announcement) CheckSchedule(now time.Time) error {
	if a.Status != AnnouncementScheduled {
		return nil
	}

	if a.ScheduledAt == nil || !a.ScheduledAt.After(now) {
		return ErrScheduleNotInFuture
	}

	return nil
}
