// Package scheduler holds the booking rules of the house calendar: the overlap
// check, owner-only mutations with an explicit force override, and the read
// models built on top of them (calendar events, free-slot suggestions and
// start-date density).
//
// Every operation takes the acting user as an explicit argument. Mutations run
// inside storage.Atomically so the overlap check and the write are one unit.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"
)

const (
	DefaultRadiusDays = 30
	DefaultMaxResults = 3
)

type Store interface {
	storage.BookingReader
	Users(ctx context.Context) ([]models.User, error)
	Atomically(ctx context.Context, fn func(tx storage.BookingTx) error) error
}

type Scheduler struct {
	log   *slog.Logger
	store Store
	now   func() time.Time

	radiusDays int
	maxResults int
}

type Option func(*Scheduler)

// WithClock replaces time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithSuggestDefaults sets the search window and result cap used when a
// suggestion query leaves them unset.
func WithSuggestDefaults(radiusDays, maxResults int) Option {
	return func(s *Scheduler) {
		s.radiusDays = radiusDays
		s.maxResults = maxResults
	}
}

func New(log *slog.Logger, store Store, opts ...Option) *Scheduler {
	s := &Scheduler{
		log:        log.With(slog.String("component", "scheduler")),
		store:      store,
		now:        time.Now,
		radiusDays: DefaultRadiusDays,
		maxResults: DefaultMaxResults,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Scheduler) today() time.Time {
	return dates.Day(s.now())
}

func newRange(start, end time.Time) (Range, error) {
	r := Range{Start: dates.Day(start), End: dates.Day(end)}
	if r.End.Before(r.Start) {
		return Range{}, ErrInvalidRange
	}

	return r, nil
}

type NewBooking struct {
	Start      time.Time
	End        time.Time
	Companions string
	// Force stores the booking even if it overlaps others.
	Force bool
}

func (s *Scheduler) Create(ctx context.Context, actor int64, in NewBooking) (models.Booking, error) {
	const op = "scheduler.Create"

	log := s.log.With(slog.String("op", op), slog.Int64("actor", actor))

	r, err := newRange(in.Start, in.End)
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		UserID:     actor,
		StartDate:  r.Start,
		EndDate:    r.End,
		Companions: in.Companions,
		Nights:     dates.Nights(r.Start, r.End),
	}

	err = s.store.Atomically(ctx, func(tx storage.BookingTx) error {
		if !in.Force {
			conflict, err := anyOverlap(ctx, tx, r, 0)
			if err != nil {
				return err
			}
			if conflict {
				return ErrConflict
			}
		}

		return tx.InsertBooking(ctx, &b)
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			log.Debug("booking rejected", sl.Err(err))
			return models.Booking{}, err
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking created",
		slog.Int64("booking_id", b.ID),
		slog.String("start", dates.Format(b.StartDate)),
		slog.String("end", dates.Format(b.EndDate)),
		slog.Bool("force", in.Force),
	)

	return b, nil
}

// ownedBooking loads a booking and checks that actor may change it.
func ownedBooking(ctx context.Context, tx storage.BookingReader, actor, id int64) (models.Booking, error) {
	b, err := tx.Booking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}

	if b.UserID != actor {
		return models.Booking{}, ErrForbidden
	}

	return b, nil
}

func isRejection(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrConflict)
}

// Update moves or resizes a booking. Checks run in order: existence,
// ownership, range, overlap with any booking but itself.
func (s *Scheduler) Update(ctx context.Context, actor, id int64, start, end time.Time, force bool) (models.Booking, error) {
	const op = "scheduler.Update"

	log := s.log.With(slog.String("op", op), slog.Int64("actor", actor), slog.Int64("booking_id", id))

	var updated models.Booking

	err := s.store.Atomically(ctx, func(tx storage.BookingTx) error {
		b, err := ownedBooking(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		r, err := newRange(start, end)
		if err != nil {
			return err
		}

		if !force {
			conflict, err := anyOverlap(ctx, tx, r, id)
			if err != nil {
				return err
			}
			if conflict {
				return ErrConflict
			}
		}

		nights := dates.Nights(r.Start, r.End)
		if err = tx.UpdateBookingDates(ctx, id, r.Start, r.End, nights); err != nil {
			return err
		}

		b.StartDate, b.EndDate, b.Nights = r.Start, r.End, nights
		updated = b

		return nil
	})
	if err != nil {
		if isRejection(err) {
			log.Debug("update rejected", sl.Err(err))
			return models.Booking{}, err
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking updated",
		slog.String("start", dates.Format(updated.StartDate)),
		slog.String("end", dates.Format(updated.EndDate)),
		slog.Bool("force", force),
	)

	return updated, nil
}

func (s *Scheduler) Delete(ctx context.Context, actor, id int64) error {
	const op = "scheduler.Delete"

	log := s.log.With(slog.String("op", op), slog.Int64("actor", actor), slog.Int64("booking_id", id))

	err := s.store.Atomically(ctx, func(tx storage.BookingTx) error {
		if _, err := ownedBooking(ctx, tx, actor, id); err != nil {
			return err
		}

		return tx.DeleteBooking(ctx, id)
	})
	if err != nil {
		if isRejection(err) {
			log.Debug("delete rejected", sl.Err(err))
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking deleted")

	return nil
}

// NextArrival returns the actor's earliest booking starting today or later,
// or nil when there is none.
func (s *Scheduler) NextArrival(ctx context.Context, actor int64) (*models.Arrival, error) {
	const op = "scheduler.NextArrival"

	today := s.today()

	bookings, err := s.store.FindBookings(ctx, storage.Filter{OwnerID: actor, From: &today})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range bookings {
		if !b.StartDate.Before(today) {
			return &models.Arrival{
				Booking:  b,
				DaysLeft: dates.DaysBetween(today, b.StartDate),
			}, nil
		}
	}

	return nil, nil
}
