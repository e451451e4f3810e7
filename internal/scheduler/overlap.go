package scheduler

import (
	"context"
	"fmt"
	"time"

	"houseBooker/internal/models"
	"houseBooker/internal/storage"
)

// Range is an inclusive span of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}

func bookingRange(b models.Booking) Range {
	return Range{Start: b.StartDate, End: b.EndDate}
}

// Overlaps reports whether two inclusive ranges share at least one day.
// Back-to-back ranges where one ends on the day the other starts overlap.
func Overlaps(a, b Range) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// anyOverlap reports whether any booking other than excludeID shares a day with r.
func anyOverlap(ctx context.Context, src storage.BookingReader, r Range, excludeID int64) (bool, error) {
	candidates, err := src.FindBookings(ctx, storage.Filter{
		From:      &r.Start,
		To:        &r.End,
		ExcludeID: excludeID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up overlapping bookings: %w", err)
	}

	for _, b := range candidates {
		if b.ID != excludeID && Overlaps(r, bookingRange(b)) {
			return true, nil
		}
	}

	return false, nil
}

// Overlaps reports whether [start, end] collides with a stored booking other than excludeID (0 for none).
func (s *Scheduler) Overlaps(ctx context.Context, start, end time.Time, excludeID int64) (bool, error) {
	const op = "scheduler.Overlaps"

	r, err := newRange(start, end)
	if err != nil {
		return false, err
	}

	found, err := anyOverlap(ctx, s.store, r, excludeID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return found, nil
}
