package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ContentKind string

const (
	KindYoga       ContentKind = "yoga"
	KindMeditation ContentKind = "meditation"
	KindMantra     ContentKind = "mantra"
	KindLibrary    ContentKind = "library"
)

var ContentKinds = []ContentKind{KindYoga, KindMeditation, KindMantra, KindLibrary}

func ParseContentKind(s string) (ContentKind, error) {
	for _, k := range ContentKinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown content kind %q", s)
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ContentBase holds the fields every content kind carries.
type ContentBase struct {
	ID              uuid.UUID   `json:"id"`
	Kind            ContentKind `json:"kind"`
	Title           string      `json:"title" validate:"required"`
	Subtitle        string      `json:"subtitle,omitempty"`
	Description     string      `json:"description,omitempty"`
	ImageURL        string      `json:"image_url,omitempty" validate:"omitempty,url"`
	VideoURL        string      `json:"video_url,omitempty" validate:"omitempty,url"`
	AudioURL        string      `json:"audio_url,omitempty" validate:"omitempty,url"`
	CoverURL        string      `json:"cover_url,omitempty" validate:"omitempty,url"`
	DurationSeconds int         `json:"duration_seconds" validate:"min=0"`
	Difficulty      Difficulty  `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	GoalSlug        string      `json:"goal_slug,omitempty"`
	IsActive        bool        `json:"is_active"`
	IsFeatured      bool        `json:"is_featured"`
	IsTrending      bool        `json:"is_trending"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Content is one of *Yoga, *Meditation, *Mantra or *Library.
type Content interface {
	Base() *ContentBase
	// Extra returns the kind specific fields, nil for kinds without any.
	Extra() any
}

type Yoga struct {
	ContentBase
}

type Meditation struct {
	ContentBase
}

type MantraFields struct {
	Meaning            string `json:"meaning,omitempty"`
	Lyrics             string `json:"lyrics,omitempty"`
	Transliteration    string `json:"transliteration,omitempty"`
	PronunciationGuide string `json:"pronunciation_guide,omitempty"`
}

type Mantra struct {
	ContentBase
	MantraFields
}

type LibraryFields struct {
	AuthorName   string `json:"author_name,omitempty"`
	ContentText  string `json:"content_text,omitempty"`
	ReadMinutes  int    `json:"read_minutes,omitempty" validate:"min=0"`
	ContentURL   string `json:"content_url,omitempty" validate:"omitempty,url"`
	LibraryType  string `json:"library_type,omitempty" validate:"omitempty,oneof=article book guide"`
	CategorySlug string `json:"category_slug,omitempty"`
}

type Library struct {
	ContentBase
	LibraryFields
}

func (c *Yoga) Base() *ContentBase       { return &c.ContentBase }
func (c *Meditation) Base() *ContentBase { return &c.ContentBase }
func (c *Mantra) Base() *ContentBase     { return &c.ContentBase }
func (c *Library) Base() *ContentBase    { return &c.ContentBase }

func (c *Yoga) Extra() any       { return nil }
func (c *Meditation) Extra() any { return nil }
func (c *Mantra) Extra() any     { return &c.MantraFields }
func (c *Library) Extra() any    { return &c.LibraryFields }

// NewContent returns an empty, active item of the given kind with its tag set.
func NewContent(kind ContentKind) (Content, error) {
	var c Content

	switch kind {
	case KindYoga:
		c = &Yoga{}
	case KindMeditation:
		c = &Meditation{}
	case KindMantra:
		c = &Mantra{}
	case KindLibrary:
		c = &Library{}
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}

	c.Base().Kind = kind
	c.Base().IsActive = true

	return c, nil
}

// DecodeContent decodes a JSON body into the variant for kind.
// Fields belonging to other kinds are rejected.
func DecodeContent(kind ContentKind, data []byte) (Content, error) {
	c, err := NewContent(kind)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err = dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}

	// the tag comes from the route, not the body
	c.Base().Kind = kind

	return c, nil
}

type SavedContent struct {
	UserID      uuid.UUID   `json:"user_id"`
	ContentID   uuid.UUID   `json:"content_id"`
	ContentType ContentKind `json:"content_type"`
	CreatedAt   time.Time   `json:"created_at"`
}
