package scheduler

import "errors"

var (
	// ErrInvalidRange: the end date precedes the start date, or a suggestion
	// request reaches outside the supported calendar.
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrConflict: the range overlaps another booking and force was not set.
	ErrConflict = errors.New("booking overlaps an existing booking")
	// ErrForbidden: the actor does not own the booking.
	ErrForbidden = errors.New("booking belongs to another user")
	ErrNotFound  = errors.New("booking not found")
)
