package updateAnnouncement

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tridivya/internal/http-server/handlers/announcement/updateAnnouncement/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

func TestUpdateAnnouncementHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	id := uuid.New()
	past := now.Add(-time.Hour)

	stored := func(status models.AnnouncementStatus, at *time.Time) *models.Announcement {
		return &models.Announcement{ID: id, Title: "Full moon circle", Message: "Join us", Tone: models.ToneCalm, Status: status, ScheduledAt: at}
	}

	testCases := []struct {
		name           string
		body           string
		current        *models.Announcement
		expectUpdate   bool
		expectedStatus int
		contains       string
	}{
		{
			name:           "Draft to published",
			body:           `{"title":"Full moon circle","message":"Join us","tone":"celebrate","status":"published"}`,
			current:        stored(models.AnnouncementDraft, nil),
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
			contains:       `"status":"published"`,
		},
		{
			name:           "Draft to scheduled in the future",
			body:           `{"title":"t","message":"m","tone":"calm","status":"scheduled","scheduled_at":"2025-06-02T09:00:00Z"}`,
			current:        stored(models.AnnouncementDraft, nil),
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
			contains:       `"status":"scheduled"`,
		},
		{
			name:           "Draft to scheduled in the past",
			body:           `{"title":"t","message":"m","tone":"calm","status":"scheduled","scheduled_at":"2025-05-01T09:00:00Z"}`,
			current:        stored(models.AnnouncementDraft, nil),
			expectedStatus: http.StatusBadRequest,
			contains:       "scheduled_at must be in the future",
		},
		{
			name:           "Scheduled without a date",
			body:           `{"title":"t","message":"m","tone":"calm","status":"scheduled"}`,
			current:        stored(models.AnnouncementDraft, nil),
			expectedStatus: http.StatusBadRequest,
			contains:       "scheduled_at must be in the future",
		},
		{
			name:           "Published cannot go back to draft",
			body:           `{"title":"t","message":"m","tone":"calm","status":"draft"}`,
			current:        stored(models.AnnouncementPublished, nil),
			expectedStatus: http.StatusConflict,
			contains:       "cannot move announcement from published to draft",
		},
		{
			name:           "Scheduled cannot go back to draft",
			body:           `{"title":"t","message":"m","tone":"calm","status":"draft"}`,
			current:        stored(models.AnnouncementScheduled, &past),
			expectedStatus: http.StatusConflict,
			contains:       "cannot move announcement from scheduled to draft",
		},
		{
			name:           "Text edit keeps a passed schedule",
			body:           `{"title":"New title","message":"m","tone":"calm","scheduled_at":"` + past.Format(time.RFC3339) + `"}`,
			current:        stored(models.AnnouncementScheduled, &past),
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
			contains:       `"title":"New title"`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewAnnouncementUpdater(t)
			updater.On("GetAnnouncement", mock.Anything, id).Return(tc.current, nil).Once()
			if tc.expectUpdate {
				updater.On("UpdateAnnouncement", mock.Anything, mock.AnythingOfType("*models.Announcement")).Return(nil).Once()
			}

			router := chi.NewRouter()
			router.Put("/admin/announcements/{id}", New(logger, updater, clock))

			req, err := http.NewRequest(http.MethodPut, "/admin/announcements/"+id.String(), bytes.NewBufferString(tc.body))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}

func TestUpdateAnnouncementNotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	updater := mocks.NewAnnouncementUpdater(t)
	updater.On("GetAnnouncement", mock.Anything, id).Return(nil, storage.ErrAnnouncementNotFound).Once()

	router := chi.NewRouter()
	router.Put("/admin/announcements/{id}", New(slogdiscard.NewDiscardLogger(), updater, time.Now))

	req := httptest.NewRequest(http.MethodPut, "/admin/announcements/"+id.String(), bytes.NewBufferString(`{"title":"t","message":"m","tone":"calm"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"announcement not found"}`, rr.Body.String())
}
