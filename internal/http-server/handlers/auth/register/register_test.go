package register

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"tridivya/internal/http-server/handlers/auth/register/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		body           string
		mockSetup      func(m *mocks.UserCreator)
		expectedStatus int
		contains       string
	}{
		{
			name: "Success",
			body: `{"email":" Aarya@Example.com ","password":"om-shanti-123","username":"aarya","firstName":"Aarya"}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Email == "aarya@example.com" &&
						u.Role == models.RoleUser &&
						bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("om-shanti-123")) == nil
				})).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			contains:       `"token":"`,
		},
		{
			name:           "Short password",
			body:           `{"email":"aarya@example.com","password":"short","username":"aarya"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "field Password must be at least 8",
		},
		{
			name:           "Bad email",
			body:           `{"email":"aarya","password":"om-shanti-123","username":"aarya"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "field Email is not a valid email",
		},
		{
			name:           "Role in body is ignored",
			body:           `{"email":"a@example.com","password":"om-shanti-123","username":"a","role":"admin"}`,
			expectedStatus: http.StatusCreated,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleUser
				})).Return(nil).Once()
			},
		},
		{
			name: "Duplicate email",
			body: `{"email":"aarya@example.com","password":"om-shanti-123","username":"aarya"}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", mock.Anything, mock.Anything).Return(storage.ErrUserExists).Once()
			},
			expectedStatus: http.StatusConflict,
			contains:       "user already exists",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewUserCreator(t)
			tc.mockSetup(creator)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()

			New(logger, creator, "test-secret", time.Hour, false).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.contains != "" {
				assert.Contains(t, rr.Body.String(), tc.contains)
			}
		})
	}
}
