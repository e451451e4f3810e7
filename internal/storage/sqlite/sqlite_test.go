package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"houseBooker/internal/models"
	"houseBooker/internal/storage"
	"houseBooker/internal/testfixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)
	u := testfixtures.MustUser(t, s, "Silvia", "Habegger", "#5ea77a")

	b := testfixtures.MustBooking(t, s, u.ID, "2025-08-03", "2025-08-10", "Max, Julia")
	require.NotZero(t, b.ID)
	require.False(t, b.CreatedAt.IsZero())

	got, err := s.Booking(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, testfixtures.Day(t, "2025-08-03"), got.StartDate)
	assert.Equal(t, testfixtures.Day(t, "2025-08-10"), got.EndDate)
	assert.Equal(t, "Max, Julia", got.Companions)
	assert.Equal(t, 8, got.Nights)
}

func TestBookingNotFound(t *testing.T) {
	t.Parallel()

	s := testfixtures.NewSQLite(t)

	_, err := s.Booking(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestFindBookings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)
	anna := testfixtures.MustUser(t, s, "Anna", "Tonev", "")
	ben := testfixtures.MustUser(t, s, "Ben", "Lahiguera", "")

	b1 := testfixtures.MustBooking(t, s, anna.ID, "2025-08-10", "2025-08-12", "")
	b2 := testfixtures.MustBooking(t, s, ben.ID, "2025-08-01", "2025-08-05", "")
	b3 := testfixtures.MustBooking(t, s, anna.ID, "2025-08-01", "2025-08-02", "")
	b4 := testfixtures.MustBooking(t, s, ben.ID, "2025-09-01", "2025-09-03", "")

	ids := func(bs []models.Booking) []int64 {
		out := make([]int64, 0, len(bs))
		for _, b := range bs {
			out = append(out, b.ID)
		}
		return out
	}

	testCases := []struct {
		name   string
		filter storage.Filter
		want   []int64
	}{
		{
			name:   "All ordered by start then id",
			filter: storage.Filter{},
			want:   []int64{b2.ID, b3.ID, b1.ID, b4.ID},
		},
		{
			name:   "Owner",
			filter: storage.Filter{OwnerID: anna.ID},
			want:   []int64{b3.ID, b1.ID},
		},
		{
			name:   "Boundary day touches",
			filter: storage.Filter{From: testfixtures.DayRef(t, "2025-08-05"), To: testfixtures.DayRef(t, "2025-08-10")},
			want:   []int64{b2.ID, b1.ID},
		},
		{
			name:   "Gap between bookings",
			filter: storage.Filter{From: testfixtures.DayRef(t, "2025-08-06"), To: testfixtures.DayRef(t, "2025-08-09")},
			want:   []int64{},
		},
		{
			name:   "Exclude",
			filter: storage.Filter{From: testfixtures.DayRef(t, "2025-08-01"), To: testfixtures.DayRef(t, "2025-08-01"), ExcludeID: b2.ID},
			want:   []int64{b3.ID},
		},
		{
			name:   "First calendar day as upper bound",
			filter: storage.Filter{To: testfixtures.DayRef(t, "0001-01-01")},
			want:   []int64{},
		},
		{
			name:   "Conjunction of owner and range",
			filter: storage.Filter{OwnerID: ben.ID, From: testfixtures.DayRef(t, "2025-08-11")},
			want:   []int64{b4.ID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.FindBookings(ctx, tc.filter)
			require.NoError(t, err)

			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestUpdateAndDeleteBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)
	u := testfixtures.MustUser(t, s, "Anna", "Tonev", "")
	b := testfixtures.MustBooking(t, s, u.ID, "2025-08-01", "2025-08-05", "")

	err := s.Atomically(ctx, func(tx storage.BookingTx) error {
		return tx.UpdateBookingDates(ctx, b.ID, testfixtures.Day(t, "2025-08-02"), testfixtures.Day(t, "2025-08-03"), 2)
	})
	require.NoError(t, err)

	got, err := s.Booking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, testfixtures.Day(t, "2025-08-02"), got.StartDate)
	assert.Equal(t, 2, got.Nights)

	err = s.Atomically(ctx, func(tx storage.BookingTx) error {
		return tx.DeleteBooking(ctx, b.ID)
	})
	require.NoError(t, err)

	_, err = s.Booking(ctx, b.ID)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)

	err = s.Atomically(ctx, func(tx storage.BookingTx) error {
		return tx.DeleteBooking(ctx, b.ID)
	})
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestAtomicallyRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)
	u := testfixtures.MustUser(t, s, "Anna", "Tonev", "")
	boom := errors.New("boom")

	err := s.Atomically(ctx, func(tx storage.BookingTx) error {
		b := models.Booking{
			UserID:    u.ID,
			StartDate: testfixtures.Day(t, "2025-08-01"),
			EndDate:   testfixtures.Day(t, "2025-08-01"),
			Nights:    1,
		}
		if err := tx.InsertBooking(ctx, &b); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := s.FindBookings(ctx, storage.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDateOrderConstraint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)
	u := testfixtures.MustUser(t, s, "Anna", "Tonev", "")

	err := s.Atomically(ctx, func(tx storage.BookingTx) error {
		b := models.Booking{
			UserID:    u.ID,
			StartDate: testfixtures.Day(t, "2025-08-05"),
			EndDate:   testfixtures.Day(t, "2025-08-01"),
			Nights:    1,
		}
		return tx.InsertBooking(ctx, &b)
	})
	assert.Error(t, err)
}

func TestUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)
	z := testfixtures.MustUser(t, s, "Zoe", "Tonev", "#112233")
	a := testfixtures.MustUser(t, s, "Anna", "Habegger", "")

	assert.Equal(t, models.DefaultColor, a.Color)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, a.ID, users[0].ID)
	assert.Equal(t, z.ID, users[1].ID)

	got, err := s.User(ctx, z.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zoe Tonev", got.Name())
	assert.Equal(t, "#112233", got.Color)

	_, err = s.User(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	require.NoError(t, s.SetUserColors(ctx, map[int64]string{a.ID: "#ABCDEF"}))
	got, err = s.User(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", got.Color)

	err = s.SetUserColors(ctx, map[int64]string{999: "#ABCDEF"})
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestBookingRequiresExistingUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := testfixtures.NewSQLite(t)

	err := s.Atomically(ctx, func(tx storage.BookingTx) error {
		b := models.Booking{
			UserID:    404,
			StartDate: testfixtures.Day(t, "2025-08-01"),
			EndDate:   testfixtures.Day(t, "2025-08-01"),
			Nights:    1,
		}
		return tx.InsertBooking(ctx, &b)
	})
	assert.Error(t, err)
}
