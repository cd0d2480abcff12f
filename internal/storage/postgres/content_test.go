package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tridivya/internal/models"
	"tridivya/internal/storage"
)

var contentColumnNames = []string{
	"id", "kind", "title", "subtitle", "description", "image_url", "video_url", "audio_url",
	"cover_url", "duration_seconds", "difficulty", "goal_slug", "is_active",
	"is_featured", "is_trending", "extra", "created_at", "updated_at",
}

func contentRow(id uuid.UUID, kind models.ContentKind, title, extra string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id.String(), string(kind), title, "", "", "", "", "",
		"", 600, "beginner", "sleep", true,
		false, false, []byte(extra), now, now,
	}
}

func TestGetContent_Mantra(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items WHERE kind = $1 AND id = $2")).
		WithArgs("mantra", id).
		WillReturnRows(sqlmock.NewRows(contentColumnNames).
			AddRow(contentRow(id, models.KindMantra, "Gayatri Mantra", `{"meaning":"light","lyrics":"om"}`)...))

	c, err := s.GetContent(context.Background(), models.KindMantra, id)
	require.NoError(t, err)

	m, ok := c.(*models.Mantra)
	require.True(t, ok)
	assert.Equal(t, id, m.ID)
	assert.Equal(t, "Gayatri Mantra", m.Title)
	assert.Equal(t, "light", m.Meaning)
	assert.Equal(t, "om", m.Lyrics)
	assert.Equal(t, models.DifficultyBeginner, m.Difficulty)
}

func TestGetContent_Missing(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items")).
		WillReturnRows(sqlmock.NewRows(contentColumnNames))

	_, err := s.GetContent(context.Background(), models.KindYoga, uuid.New())
	assert.ErrorIs(t, err, storage.ErrContentNotFound)
}

func TestListContent_Filters(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE kind = $1 AND is_active AND goal_slug = $2 AND is_featured") + ".*" + regexp.QuoteMeta("LIMIT $3 OFFSET $4")).
		WithArgs("meditation", "sleep", 10, 20).
		WillReturnRows(sqlmock.NewRows(contentColumnNames).
			AddRow(contentRow(uuid.New(), models.KindMeditation, "Body Scan", "{}")...))

	items, err := s.ListContent(context.Background(), models.KindMeditation, storage.ContentFilter{
		GoalSlug: "sleep",
		Featured: true,
		Limit:    10,
		Offset:   20,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, ok := items[0].(*models.Meditation)
	assert.True(t, ok)
}

func TestSearchContent_EscapesPattern(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("title ILIKE $1")).
		WithArgs(`%100\%%`, "", 20).
		WillReturnRows(sqlmock.NewRows(contentColumnNames))

	items, err := s.SearchContent(context.Background(), "100%", "", 20)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpsertContentByTitle(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	c, err := models.NewContent(models.KindLibrary)
	require.NoError(t, err)
	c.Base().Title = "The Science of Breath"
	c.(*models.Library).AuthorName = "Tridivya Editorial"

	existing := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (kind, title) DO UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow(existing.String(), false))

	inserted, err := s.UpsertContentByTitle(context.Background(), c)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, existing, c.Base().ID)
}

func TestSaveContent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "Saved",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_content")).
					WillReturnRows(sqlmock.NewRows([]string{"user_id", "content_id", "content_type", "created_at"}).
						AddRow(uuid.NewString(), uuid.NewString(), "yoga", time.Now()))
			},
		},
		{
			name: "Content missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_content")).
					WillReturnRows(sqlmock.NewRows([]string{"user_id", "content_id", "content_type", "created_at"}))
			},
			wantErr: storage.ErrContentNotFound,
		},
		{
			name: "Already saved",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_content")).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: storage.ErrAlreadySaved,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMock(t)
			tc.setup(mock)

			sc, err := s.SaveContent(context.Background(), uuid.New(), uuid.New(), models.KindYoga)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.KindYoga, sc.ContentType)
		})
	}
}

func TestUnsaveContent_NotSaved(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_content")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UnsaveContent(context.Background(), uuid.New(), uuid.New(), models.KindMantra)
	assert.ErrorIs(t, err, storage.ErrNotSaved)
}

func TestGetSettings_Defaults(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_settings")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"privacy", "notifications", "appearance", "data"}))

	settings, err := s.GetSettings(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(userID), *settings)
}

func TestCreateUser_Exists(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "aarya@example.com", "aarya", "", "", "", "user", []byte("hash")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := s.CreateUser(context.Background(), &models.User{Email: "Aarya@Example.com", Username: "aarya", PasswordHash: []byte("hash")})
	assert.ErrorIs(t, err, storage.ErrUserExists)
}
