package scheduler

import (
	"context"
	"fmt"
	"iter"
	"time"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"
)

// EventFilter narrows the calendar feed. A zero OwnerID or a nil date
// imposes no constraint.
type EventFilter struct {
	OwnerID int64
	From    *time.Time
	To      *time.Time
}

const titleSeparator = " – "

// Events projects the matching bookings as calendar events for viewer,
// ordered by start date then id. The returned sequence can be ranged over
// any number of times.
func (s *Scheduler) Events(ctx context.Context, viewer int64, f EventFilter) (iter.Seq[models.EventView], error) {
	const op = "scheduler.Events"

	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, ErrInvalidRange
	}

	bookings, err := s.store.FindBookings(ctx, storage.Filter{
		OwnerID: f.OwnerID,
		From:    f.From,
		To:      f.To,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	owners := make(map[int64]models.User, len(users))
	for _, u := range users {
		owners[u.ID] = u
	}

	today := s.today()

	return func(yield func(models.EventView) bool) {
		for _, b := range bookings {
			if !yield(project(b, owners[b.UserID], viewer, today)) {
				return
			}
		}
	}, nil
}

func project(b models.Booking, owner models.User, viewer int64, today time.Time) models.EventView {
	title := owner.Name()
	if owner.ID == 0 {
		title = fmt.Sprintf("User #%d", b.UserID)
	}
	if b.Companions != "" {
		title += titleSeparator + b.Companions
	}

	color := owner.Color
	if color == "" {
		color = models.DefaultColor
	}

	editable := b.UserID == viewer

	return models.EventView{
		ID:       b.ID,
		Title:    title,
		Start:    dates.Format(b.StartDate),
		End:      dates.Format(dates.AddDays(b.EndDate, 1)),
		AllDay:   true,
		Color:    color,
		Editable: editable,
		ExtendedProps: models.EventExtProps{
			CanEdit:    editable,
			Companions: b.Companions,
			OwnerID:    b.UserID,
			Nights:     b.Nights,
			DaysLeft:   max(dates.DaysBetween(today, b.StartDate), 0),
		},
	}
}
