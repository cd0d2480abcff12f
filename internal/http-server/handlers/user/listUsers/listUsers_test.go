package listUsers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tridivya/internal/http-server/handlers/user/listUsers/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
)

func TestListUsersHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	u := models.User{ID: uuid.New(), Email: "asha@example.com", Role: models.RoleUser, PasswordHash: []byte("secret-hash")}

	t.Run("Listed without password hashes", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewUserLister(t)
		lister.On("ListUsers", mock.Anything).Return([]models.User{u}, nil).Once()

		rr := httptest.NewRecorder()
		New(logger, lister).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "asha@example.com")
		assert.NotContains(t, rr.Body.String(), "secret-hash")
	})

	t.Run("Storage error", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewUserLister(t)
		lister.On("ListUsers", mock.Anything).Return(nil, errors.New("db down")).Once()

		rr := httptest.NewRecorder()
		New(logger, lister).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "failed to list users")
	})
}
