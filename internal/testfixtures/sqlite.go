// Package testfixtures provides storage harnesses and seed helpers for tests.
package testfixtures

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"
	"houseBooker/internal/storage/sqlite"
)

// NewSQLite opens a migrated SQLite storage in a temporary directory. The
// storage is closed when the test finishes.
func NewSQLite(tb testing.TB) *sqlite.Storage {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "house.db")

	s, err := sqlite.New(path)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	tb.Cleanup(func() {
		_ = s.Close()
	})

	if err = s.Migrate(context.Background()); err != nil {
		tb.Fatalf("failed to migrate storage: %v", err)
	}

	return s
}

// Day parses an ISO date or fails the test.
func Day(tb testing.TB, s string) time.Time {
	tb.Helper()

	d, err := dates.Parse(s)
	if err != nil {
		tb.Fatalf("bad fixture date: %v", err)
	}

	return d
}

// DayRef is Day for optional date fields.
func DayRef(tb testing.TB, s string) *time.Time {
	tb.Helper()

	d := Day(tb, s)

	return &d
}

// MustUser creates a household member.
func MustUser(tb testing.TB, s *sqlite.Storage, first, last, color string) models.User {
	tb.Helper()

	u := models.User{FirstName: first, LastName: last, Color: color}
	if err := s.CreateUser(context.Background(), &u); err != nil {
		tb.Fatalf("failed to create user: %v", err)
	}

	return u
}

// MustBooking inserts a booking directly, bypassing any overlap checks.
func MustBooking(tb testing.TB, s *sqlite.Storage, userID int64, start, end, companions string) models.Booking {
	tb.Helper()

	b := models.Booking{
		UserID:     userID,
		StartDate:  Day(tb, start),
		EndDate:    Day(tb, end),
		Companions: companions,
	}
	b.Nights = dates.Nights(b.StartDate, b.EndDate)

	err := s.Atomically(context.Background(), func(tx storage.BookingTx) error {
		return tx.InsertBooking(context.Background(), &b)
	})
	if err != nil {
		tb.Fatalf("failed to create booking: %v", err)
	}

	return b
}
