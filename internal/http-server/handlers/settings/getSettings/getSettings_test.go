package getSettings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tridivya/internal/http-server/handlers/settings/getSettings/mocks"
	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/jwt"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
)

func TestGetSettingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	userID := uuid.New()
	defaults := models.DefaultSettings(userID)

	testCases := []struct {
		name           string
		withClaims     bool
		mockSetup      func(m *mocks.SettingsGetter)
		expectedStatus int
		contains       string
	}{
		{
			name:       "Found",
			withClaims: true,
			mockSetup: func(m *mocks.SettingsGetter) {
				m.On("GetSettings", mock.Anything, userID).Return(&defaults, nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains:       userID.String(),
		},
		{
			name:           "No claims",
			mockSetup:      func(m *mocks.SettingsGetter) {},
			expectedStatus: http.StatusUnauthorized,
			contains:       "authorization required",
		},
		{
			name:       "Storage error",
			withClaims: true,
			mockSetup: func(m *mocks.SettingsGetter) {
				m.On("GetSettings", mock.Anything, userID).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			contains:       "failed to get settings",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewSettingsGetter(t)
			tc.mockSetup(getter)

			req := httptest.NewRequest(http.MethodGet, "/settings", nil)
			if tc.withClaims {
				req = req.WithContext(auth.WithClaims(req.Context(), &jwt.Claims{UserID: userID, Role: models.RoleUser}))
			}
			rr := httptest.NewRecorder()
			New(logger, getter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
