package storage

import (
	"errors"

	"tridivya/internal/models"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrContentNotFound      = errors.New("content not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAlreadySaved         = errors.New("content already saved")
	ErrNotSaved             = errors.New("content not saved")
)

// ContentFilter narrows a content listing. Zero values match everything.
type ContentFilter struct {
	GoalSlug   string
	Difficulty models.Difficulty
	Featured   bool
	Trending   bool
	// IncludeInactive is set for admin listings.
	IncludeInactive bool
	Limit           int
	Offset          int
}
