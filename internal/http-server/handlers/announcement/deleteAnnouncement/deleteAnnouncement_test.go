package deleteAnnouncement

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tridivya/internal/http-server/handlers/announcement/deleteAnnouncement/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/storage"
)

func TestDeleteAnnouncementHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	id := uuid.New()

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(m *mocks.AnnouncementDeleter)
		expectedStatus int
		contains       string
	}{
		{
			name: "Deleted",
			path: id.String(),
			mockSetup: func(m *mocks.AnnouncementDeleter) {
				m.On("DeleteAnnouncement", mock.Anything, id).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains:       `"status":"OK"`,
		},
		{
			name:           "Bad id",
			path:           "nope",
			mockSetup:      func(m *mocks.AnnouncementDeleter) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "invalid announcement id format",
		},
		{
			name: "Missing",
			path: id.String(),
			mockSetup: func(m *mocks.AnnouncementDeleter) {
				m.On("DeleteAnnouncement", mock.Anything, id).Return(storage.ErrAnnouncementNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			contains:       "announcement not found",
		},
		{
			name: "Storage error",
			path: id.String(),
			mockSetup: func(m *mocks.AnnouncementDeleter) {
				m.On("DeleteAnnouncement", mock.Anything, id).Return(errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			contains:       "failed to delete announcement",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewAnnouncementDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Delete("/admin/announcements/{id}", New(logger, deleter))

			req := httptest.NewRequest(http.MethodDelete, "/admin/announcements/"+tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
