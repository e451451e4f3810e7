package scheduler

import (
	"testing"
	"time"

	"houseBooker/internal/lib/logger/handlers/slogdiscard"
	"houseBooker/internal/storage/sqlite"
	"houseBooker/internal/testfixtures"
)

var fixedNow = time.Date(2025, 7, 25, 10, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*Scheduler, *sqlite.Storage) {
	t.Helper()

	store := testfixtures.NewSQLite(t)
	s := New(slogdiscard.NewDiscardLogger(), store, WithClock(func() time.Time { return fixedNow }))

	return s, store
}

func day(t *testing.T, s string) time.Time {
	t.Helper()

	return testfixtures.Day(t, s)
}

func dayRef(t *testing.T, s string) *time.Time {
	t.Helper()

	return testfixtures.DayRef(t, s)
}

func intRef(n int) *int {
	return &n
}
