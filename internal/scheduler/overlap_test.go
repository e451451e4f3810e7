package scheduler

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"houseBooker/internal/storage"
	"houseBooker/internal/testfixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsPredicate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "Shared boundary day", a: [2]string{"2025-08-01", "2025-08-05"}, b: [2]string{"2025-08-05", "2025-08-10"}, want: true},
		{name: "Adjacent days", a: [2]string{"2025-08-01", "2025-08-05"}, b: [2]string{"2025-08-06", "2025-08-10"}, want: false},
		{name: "Contained", a: [2]string{"2025-08-01", "2025-08-10"}, b: [2]string{"2025-08-05", "2025-08-08"}, want: true},
		{name: "Identical single day", a: [2]string{"2025-08-01", "2025-08-01"}, b: [2]string{"2025-08-01", "2025-08-01"}, want: true},
		{name: "Before", a: [2]string{"2025-07-01", "2025-07-03"}, b: [2]string{"2025-08-01", "2025-08-03"}, want: false},
		{name: "Partial left", a: [2]string{"2025-07-28", "2025-08-02"}, b: [2]string{"2025-08-01", "2025-08-03"}, want: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := Range{Start: day(t, tc.a[0]), End: day(t, tc.a[1])}
			b := Range{Start: day(t, tc.b[0]), End: day(t, tc.b[1])}

			assert.Equal(t, tc.want, Overlaps(a, b))
			assert.Equal(t, tc.want, Overlaps(b, a), "overlap must be symmetric")
		})
	}
}

// sharesDay checks overlap the slow way, day by day.
func sharesDay(a, b Range) bool {
	for d := a.Start; !d.After(a.End); d = d.AddDate(0, 0, 1) {
		if !d.Before(b.Start) && !d.After(b.End) {
			return true
		}
	}
	return false
}

func randomRange(rng *rand.Rand) Range {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(40))
	return Range{Start: start, End: start.AddDate(0, 0, rng.Intn(10))}
}

func TestOverlapsMatchesDayByDay(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		a, b := randomRange(rng), randomRange(rng)
		require.Equal(t, sharesDay(a, b), Overlaps(a, b), "a=%v b=%v", a, b)
	}
}

func TestSchedulerOverlapsAgainstStoredBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, store := newTestScheduler(t)
	u := testfixtures.MustUser(t, store, "Anna", "Tonev", "")
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 40; i++ {
		a, b := randomRange(rng), randomRange(rng)

		stored := testfixtures.MustBooking(t, store, u.ID, b.Start.Format("2006-01-02"), b.End.Format("2006-01-02"), "")

		got, err := s.Overlaps(ctx, a.Start, a.End, 0)
		require.NoError(t, err)
		assert.Equal(t, !a.Start.After(b.End) && !b.Start.After(a.End), got, "a=%v b=%v", a, b)

		require.NoError(t, store.Atomically(ctx, func(tx storage.BookingTx) error {
			return tx.DeleteBooking(ctx, stored.ID)
		}))
	}
}

func TestSchedulerOverlapsBoundaries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, store := newTestScheduler(t)
	u := testfixtures.MustUser(t, store, "Anna", "Tonev", "")
	existing := testfixtures.MustBooking(t, store, u.ID, "2025-08-01", "2025-08-05", "")

	got, err := s.Overlaps(ctx, day(t, "2025-08-05"), day(t, "2025-08-10"), 0)
	require.NoError(t, err)
	assert.True(t, got, "shared boundary date counts as conflict")

	got, err = s.Overlaps(ctx, day(t, "2025-08-06"), day(t, "2025-08-10"), 0)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = s.Overlaps(ctx, day(t, "2025-08-02"), day(t, "2025-08-03"), existing.ID)
	require.NoError(t, err)
	assert.False(t, got, "excluded booking must not count")

	_, err = s.Overlaps(ctx, day(t, "2025-08-10"), day(t, "2025-08-01"), 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
