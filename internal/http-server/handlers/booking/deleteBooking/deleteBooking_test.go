package deleteBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tridivya/internal/http-server/handlers/booking/deleteBooking/mocks"
	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/jwt"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	owner := uuid.New()
	id := uuid.New()

	testCases := []struct {
		name           string
		claims         *jwt.Claims
		mockSetup      func(m *mocks.BookingDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Owner deletes",
			claims: &jwt.Claims{UserID: owner, Role: models.RoleUser},
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("GetBooking", mock.Anything, id).Return(&models.Booking{ID: id, UserID: owner}, nil).Once()
				m.On("DeleteBooking", mock.Anything, id).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:   "Admin deletes without ownership check",
			claims: &jwt.Claims{UserID: uuid.New(), Role: models.RoleAdmin},
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", mock.Anything, id).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:   "Admin deletes unknown id",
			claims: &jwt.Claims{UserID: uuid.New(), Role: models.RoleAdmin},
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", mock.Anything, id).Return(storage.ErrBookingNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:   "Unknown id",
			claims: &jwt.Claims{UserID: owner, Role: models.RoleUser},
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("GetBooking", mock.Anything, id).Return(nil, storage.ErrBookingNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:   "Someone else's booking",
			claims: &jwt.Claims{UserID: uuid.New(), Role: models.RoleUser},
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("GetBooking", mock.Anything, id).Return(&models.Booking{ID: id, UserID: owner}, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:   "Storage error",
			claims: &jwt.Claims{UserID: owner, Role: models.RoleUser},
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("GetBooking", mock.Anything, id).Return(&models.Booking{ID: id, UserID: owner}, nil).Once()
				m.On("DeleteBooking", mock.Anything, id).Return(errors.New("database error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewBookingDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Delete("/bookings/{id}", New(logger, deleter))

			req, err := http.NewRequest(http.MethodDelete, "/bookings/"+id.String(), nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithClaims(req.Context(), tc.claims))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
