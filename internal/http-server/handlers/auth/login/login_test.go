package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"houseBooker/internal/http-server/handlers/auth/login/mocks"
	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/logger/handlers/slogdiscard"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	cookie := auth.Cookie{Name: "house_session", TTL: time.Hour}

	anna := models.User{ID: 2, FirstName: "Anna", LastName: "Tonev", Color: "#CFD22C"}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(u *mocks.UserProvider, s *mocks.SessionCreator)
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name:        "Success",
			requestBody: `{"user_id":2}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionCreator) {
				u.On("User", mock.Anything, int64(2)).Return(anna, nil)
				s.On("Create", int64(2)).Return("token-2", nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `user=2`,
			mockSetup:      func(u *mocks.UserProvider, s *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing user id",
			requestBody:    `{}`,
			mockSetup:      func(u *mocks.UserProvider, s *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field UserID is a required field"}`,
		},
		{
			name:        "Unknown user",
			requestBody: `{"user_id":42}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionCreator) {
				u.On("User", mock.Anything, int64(42)).Return(models.User{}, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "User lookup failure",
			requestBody: `{"user_id":2}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionCreator) {
				u.On("User", mock.Anything, int64(2)).Return(models.User{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
		{
			name:        "Session failure",
			requestBody: `{"user_id":2}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionCreator) {
				u.On("User", mock.Anything, int64(2)).Return(anna, nil)
				s.On("Create", int64(2)).Return("", errors.New("entropy exhausted"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := mocks.NewUserProvider(t)
			sessions := mocks.NewSessionCreator(t)
			tc.mockSetup(users, sessions)

			handler := New(logger, users, sessions, cookie)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}

			if !tc.expectCookie {
				assert.Empty(t, rr.Result().Cookies())
				return
			}

			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "house_session", cookies[0].Name)
			assert.Equal(t, "token-2", cookies[0].Value)

			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, "token-2", resp.Token)
			assert.Equal(t, "Anna Tonev", resp.User.Name())
		})
	}
}
