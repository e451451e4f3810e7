package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse("2025-08-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = Parse("01.08.2025")
	assert.Error(t, err)

	_, err = Parse("2025-02-30")
	assert.Error(t, err)
}

func TestDay(t *testing.T) {
	t.Parallel()

	zurich := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2025, 8, 1, 0, 30, 0, 0, zurich)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), Day(ts))
}

func TestNights(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "Single day", start: "2025-08-01", end: "2025-08-01", want: 1},
		{name: "Five days", start: "2025-08-01", end: "2025-08-05", want: 5},
		{name: "Across month", start: "2025-07-30", end: "2025-08-02", want: 4},
		{name: "Across DST change", start: "2025-03-29", end: "2025-03-31", want: 3},
		{name: "Leap day", start: "2024-02-28", end: "2024-03-01", want: 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			start, err := Parse(tc.start)
			require.NoError(t, err)
			end, err := Parse(tc.end)
			require.NoError(t, err)

			assert.Equal(t, tc.want, Nights(start, end))
		})
	}
}

func TestDaysBetweenNegative(t *testing.T) {
	t.Parallel()

	a, _ := Parse("2025-08-10")
	b, _ := Parse("2025-08-01")

	assert.Equal(t, -9, DaysBetween(a, b))
	assert.Equal(t, "2025-08-11", Format(AddDays(a, 1)))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	aug := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, aug, Clamp(aug))
	assert.Equal(t, Max, Clamp(AddDays(Max, 1)))
	assert.Equal(t, Min, Clamp(AddDays(Min, -1)))

	assert.Equal(t, "9999-12-31", Format(Max))
	assert.Equal(t, "0001-01-01", Format(Min))
}
