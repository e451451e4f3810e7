package scheduler

import (
	"context"
	"fmt"
	"sort"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"
)

// houseCapacity is the number of parties the house holds at once.
const houseCapacity = 1

// Density counts bookings per start date, ascending by date. Only the arrival
// day of a booking is counted, not every night it occupies.
func (s *Scheduler) Density(ctx context.Context) ([]models.DensityPoint, error) {
	const op = "scheduler.Density"

	bookings, err := s.store.FindBookings(ctx, storage.Filter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return densityByStartDate(bookings), nil
}

func densityByStartDate(bookings []models.Booking) []models.DensityPoint {
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[dates.Format(b.StartDate)]++
	}

	// ISO dates sort chronologically as strings
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)

	points := make([]models.DensityPoint, 0, len(days))
	for _, d := range days {
		points = append(points, models.DensityPoint{
			Date:    d,
			Density: counts[d] / houseCapacity,
		})
	}

	return points
}
