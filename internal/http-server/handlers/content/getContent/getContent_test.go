package getContent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tridivya/internal/http-server/handlers/content/getContent/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

func TestGetContentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	id := uuid.New()

	library := func(active bool) models.Content {
		return &models.Library{
			ContentBase:   models.ContentBase{ID: id, Kind: models.KindLibrary, Title: "On Stillness", IsActive: active},
			LibraryFields: models.LibraryFields{AuthorName: "Tridivya", ReadMinutes: 7},
		}
	}

	testCases := []struct {
		name            string
		includeInactive bool
		mockSetup       func(m *mocks.ContentGetter)
		expectedStatus  int
		contains        string
	}{
		{
			name: "Active item",
			mockSetup: func(m *mocks.ContentGetter) {
				m.On("GetContent", mock.Anything, models.KindLibrary, id).Return(library(true), nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains:       `"author_name":"Tridivya"`,
		},
		{
			name: "Inactive item is hidden",
			mockSetup: func(m *mocks.ContentGetter) {
				m.On("GetContent", mock.Anything, models.KindLibrary, id).Return(library(false), nil).Once()
			},
			expectedStatus: http.StatusNotFound,
			contains:       "content not found",
		},
		{
			name:            "Inactive item on admin route",
			includeInactive: true,
			mockSetup: func(m *mocks.ContentGetter) {
				m.On("GetContent", mock.Anything, models.KindLibrary, id).Return(library(false), nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains:       `"is_active":false`,
		},
		{
			name: "Missing item",
			mockSetup: func(m *mocks.ContentGetter) {
				m.On("GetContent", mock.Anything, models.KindLibrary, id).Return(nil, storage.ErrContentNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			contains:       "content not found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewContentGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/content/{kind}/{id}", New(logger, getter, tc.includeInactive))

			req := httptest.NewRequest(http.MethodGet, "/content/library/"+id.String(), nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
