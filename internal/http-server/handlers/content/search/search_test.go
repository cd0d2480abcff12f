package search

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tridivya/internal/http-server/handlers/content/search/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
)

func TestSearchHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.ContentSearcher)
		expectedStatus int
		contains       string
	}{
		{
			name: "Across kinds",
			url:  "/search?q=%20breath%20",
			mockSetup: func(m *mocks.ContentSearcher) {
				m.On("SearchContent", mock.Anything, "breath", models.ContentKind(""), defaultLimit).
					Return([]models.Content{&models.Yoga{ContentBase: models.ContentBase{Kind: models.KindYoga, Title: "Breath of Fire"}}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains:       `"title":"Breath of Fire"`,
		},
		{
			name: "One kind with limit",
			url:  "/search?q=om&kind=mantra&limit=5",
			mockSetup: func(m *mocks.ContentSearcher) {
				m.On("SearchContent", mock.Anything, "om", models.KindMantra, 5).Return([]models.Content{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains:       `"items":[]`,
		},
		{
			name:           "Empty query",
			url:            "/search?q=%20",
			mockSetup:      func(m *mocks.ContentSearcher) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "query is required",
		},
		{
			name:           "Unknown kind",
			url:            "/search?q=om&kind=podcast",
			mockSetup:      func(m *mocks.ContentSearcher) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "unknown content kind",
		},
		{
			name: "Storage error",
			url:  "/search?q=om",
			mockSetup: func(m *mocks.ContentSearcher) {
				m.On("SearchContent", mock.Anything, "om", models.ContentKind(""), defaultLimit).Return(nil, errors.New("database error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			contains:       "failed to search content",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			searcher := mocks.NewContentSearcher(t)
			tc.mockSetup(searcher)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			New(logger, searcher).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
