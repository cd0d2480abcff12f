package logout

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tridivya/internal/http-server/handlers/auth/logout/mocks"
	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/jwt"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	claims := &jwt.Claims{
		UserID: uuid.New(),
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "token-1",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("Revokes and clears cookie", func(t *testing.T) {
		t.Parallel()

		revoker := mocks.NewTokenRevoker(t)
		revoker.On("Revoke", mock.Anything, "token-1", mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 59*time.Minute && ttl <= time.Hour
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
		rr := httptest.NewRecorder()

		New(slogdiscard.NewDiscardLogger(), revoker, false).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("Revocation failure", func(t *testing.T) {
		t.Parallel()

		revoker := mocks.NewTokenRevoker(t)
		revoker.On("Revoke", mock.Anything, "token-1", mock.Anything).Return(errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
		rr := httptest.NewRecorder()

		New(slogdiscard.NewDiscardLogger(), revoker, false).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to logout"}`, rr.Body.String())
	})
}
