package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Filter narrows a booking query. Every non-zero ID and every non-nil date is
// an additional condition.
type Filter struct {
	OwnerID   int64
	From      *time.Time
	To        *time.Time
	ExcludeID int64
}

// SQL renders the filter as a WHERE clause body. bind returns the placeholder
// for the n-th argument (1-based). From and To select bookings whose inclusive
// range touches [From, To].
func (f Filter) SQL(bind func(n int) string) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", bind(len(args)), 1))
	}

	if f.OwnerID != 0 {
		add("user_id = ?", f.OwnerID)
	}
	if f.From != nil {
		add("end_date >= ?", dates.Format(*f.From))
	}
	if f.To != nil {
		add("start_date <= ?", dates.Format(*f.To))
	}
	if f.ExcludeID != 0 {
		add("id <> ?", f.ExcludeID)
	}

	if len(conds) == 0 {
		return "TRUE", nil
	}

	return strings.Join(conds, " AND "), args
}

type BookingReader interface {
	Booking(ctx context.Context, id int64) (models.Booking, error)
	// FindBookings returns matching bookings ordered by start date, then id.
	FindBookings(ctx context.Context, f Filter) ([]models.Booking, error)
}

// BookingTx is a unit of work serialized against every other writer.
type BookingTx interface {
	BookingReader
	// InsertBooking stores b and fills in its ID and CreatedAt.
	InsertBooking(ctx context.Context, b *models.Booking) error
	UpdateBookingDates(ctx context.Context, id int64, start, end time.Time, nights int) error
	DeleteBooking(ctx context.Context, id int64) error
}
