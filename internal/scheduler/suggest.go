package scheduler

import (
	"context"
	"fmt"
	"time"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"
)

type SuggestQuery struct {
	Start time.Time
	End   time.Time
	// RadiusDays widens the search window on both sides; nil uses the default.
	RadiusDays *int
	// MaxResults caps the number of slots; nil uses the default.
	MaxResults *int
}

// Suggest offers free ranges of the same length as [q.Start, q.End]. When the
// wanted range is itself free it is the only suggestion. Otherwise candidate
// starts run day by day from Start-radius to End+radius and the first
// MaxResults that overlap nothing are returned, in that order. Candidates
// never leave [dates.Min, dates.Max], and a wanted range outside it is
// ErrInvalidRange.
func (s *Scheduler) Suggest(ctx context.Context, q SuggestQuery) ([]models.Slot, error) {
	const op = "scheduler.Suggest"

	want, err := newRange(q.Start, q.End)
	if err != nil {
		return nil, err
	}
	if want.Start.Before(dates.Min) || want.End.After(dates.Max) {
		return nil, ErrInvalidRange
	}

	radius := s.radiusDays
	if q.RadiusDays != nil {
		radius = *q.RadiusDays
	}
	limit := s.maxResults
	if q.MaxResults != nil {
		limit = *q.MaxResults
	}
	if radius < 0 || limit < 0 {
		return nil, ErrInvalidRange
	}

	span := dates.Nights(want.Start, want.End)
	first := dates.Clamp(dates.AddDays(want.Start, -radius))
	last := dates.AddDays(want.End, radius)
	if latest := dates.AddDays(dates.Max, 1-span); last.After(latest) {
		last = latest
	}

	// one read covers every candidate: the latest candidate ends at last+span-1
	windowEnd := dates.AddDays(last, span-1)
	bookings, err := s.store.FindBookings(ctx, storage.Filter{
		From: &first,
		To:   &windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if limit > 0 && !collides(bookings, want) {
		return []models.Slot{slotOf(want, span)}, nil
	}

	return suggestSlots(bookings, first, last, span, limit), nil
}

func slotOf(r Range, span int) models.Slot {
	return models.Slot{
		Start:  dates.Format(r.Start),
		End:    dates.Format(r.End),
		Nights: span,
	}
}

func suggestSlots(bookings []models.Booking, first, last time.Time, span, limit int) []models.Slot {
	slots := make([]models.Slot, 0, limit)

	for c := first; !c.After(last) && len(slots) < limit; c = dates.AddDays(c, 1) {
		candidate := Range{Start: c, End: dates.AddDays(c, span-1)}
		if collides(bookings, candidate) {
			continue
		}

		slots = append(slots, slotOf(candidate, span))
	}

	return slots
}

func collides(bookings []models.Booking, r Range) bool {
	for _, b := range bookings {
		if Overlaps(r, bookingRange(b)) {
			return true
		}
	}

	return false
}
