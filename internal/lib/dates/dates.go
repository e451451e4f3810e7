// Package dates handles calendar days as time.Time values pinned to midnight UTC.
package dates

import (
	"fmt"
	"time"
)

// Layout is the ISO calendar date format used on the wire and in storage.
const Layout = "2006-01-02"

// Min and Max bound the days every backend stores. Stored dates compare as
// text, so computed days must stay inside them.
var (
	Min = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	Max = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Parse reads an ISO date (YYYY-MM-DD).
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return t, nil
}

// Day truncates t to its calendar day in t's own location and pins it to UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween counts whole days from a to b; negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Nights is the inclusive day count of [start, end].
func Nights(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

// Clamp pins t into [Min, Max].
func Clamp(t time.Time) time.Time {
	switch {
	case t.Before(Min):
		return Min
	case t.After(Max):
		return Max
	}

	return t
}
