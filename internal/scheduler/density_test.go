package scheduler

import (
	"context"
	"testing"

	"houseBooker/internal/models"
	"houseBooker/internal/testfixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensityCountsStartDatesOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, store := newTestScheduler(t)
	u := testfixtures.MustUser(t, store, "Anna", "Tonev", "")
	testfixtures.MustBooking(t, store, u.ID, "2025-08-05", "2025-08-09", "")
	testfixtures.MustBooking(t, store, u.ID, "2025-08-01", "2025-08-10", "")
	testfixtures.MustBooking(t, store, u.ID, "2025-08-05", "2025-08-05", "")

	points, err := s.Density(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.DensityPoint{
		{Date: "2025-08-01", Density: 1},
		{Date: "2025-08-05", Density: 2},
	}, points)

	again, err := s.Density(ctx)
	require.NoError(t, err)
	assert.Equal(t, points, again)
}

func TestDensityEmpty(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t)

	points, err := s.Density(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, points)
	assert.Empty(t, points)
}
