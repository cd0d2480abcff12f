package listContent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tridivya/internal/http-server/handlers/content/listContent/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

func TestListContentHandler(t *testing.T) {
	t.Parallel()

	lister := mocks.NewContentLister(t)
	lister.On("ListContent", mock.Anything, models.KindMeditation, storage.ContentFilter{
		GoalSlug:   "sleep",
		Difficulty: models.DifficultyBeginner,
		Featured:   true,
		Limit:      maxLimit,
		Offset:     10,
	}).Return([]models.Content{
		&models.Meditation{ContentBase: models.ContentBase{Kind: models.KindMeditation, Title: "Body Scan"}},
	}, nil).Once()

	router := chi.NewRouter()
	router.Get("/content/{kind}", New(slogdiscard.NewDiscardLogger(), lister, false))

	req := httptest.NewRequest(http.MethodGet, "/content/meditation?goal=sleep&difficulty=beginner&featured=true&limit=500&offset=10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Body Scan"`)
	assert.Contains(t, rr.Body.String(), `"kind":"meditation"`)
}

func TestListContentUnknownKind(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/content/{kind}", New(slogdiscard.NewDiscardLogger(), mocks.NewContentLister(t), false))

	req := httptest.NewRequest(http.MethodGet, "/content/podcasts", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"unknown content kind"}`, rr.Body.String())
}
