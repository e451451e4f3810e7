package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMarshalJSON(t *testing.T) {
	t.Parallel()

	b := Booking{
		ID:         7,
		UserID:     2,
		StartDate:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
		Companions: "Max, Julia",
		Nights:     5,
		CreatedAt:  time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "2025-08-01", got["start_date"])
	assert.Equal(t, "2025-08-05", got["end_date"])
	assert.Equal(t, "Max, Julia", got["companions"])
	assert.EqualValues(t, 5, got["nights"])
	assert.EqualValues(t, 7, got["id"])
	assert.Equal(t, "2025-07-01T12:00:00Z", got["created_at"])
}

func TestBookingMarshalJSONOmitsEmptyCompanions(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Booking{ID: 1})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "companions")
}

func TestUserName(t *testing.T) {
	t.Parallel()

	u := User{FirstName: "Silvia", LastName: "Habegger"}

	assert.Equal(t, "Silvia Habegger", u.Name())
}
