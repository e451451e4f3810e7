package deleteBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"houseBooker/internal/http-server/handlers/booking/deleteBooking/mocks"
	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/logger/handlers/slogdiscard"
	"houseBooker/internal/scheduler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		actor          int64
		bookingID      string
		mockSetup      func(m *mocks.BookingDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			actor:     1,
			bookingID: "10",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Not logged in",
			bookingID:      "10",
			mockSetup:      func(m *mocks.BookingDeleter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"login required"}`,
		},
		{
			name:           "Invalid booking id",
			actor:          1,
			bookingID:      "ten",
			mockSetup:      func(m *mocks.BookingDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id"}`,
		},
		{
			name:      "Not found",
			actor:     1,
			bookingID: "11",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(11)).Return(scheduler.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Not the owner",
			actor:     2,
			bookingID: "10",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("Delete", mock.Anything, int64(2), int64(10)).Return(scheduler.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"only the owner can delete this booking"}`,
		},
		{
			name:      "Internal server error",
			actor:     1,
			bookingID: "10",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewBookingDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/bookings/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)
			if tc.actor != 0 {
				req = req.WithContext(auth.WithActor(req.Context(), tc.actor))
			}

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}
