package models

import (
	"encoding/json"
	"time"

	"houseBooker/internal/lib/dates"
)

type Booking struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Companions string    `json:"companions,omitempty"`
	Nights     int       `json:"nights"`
	CreatedAt  time.Time `json:"created_at"`
}

// MarshalJSON renders the stay dates as plain ISO days.
func (b Booking) MarshalJSON() ([]byte, error) {
	type booking Booking

	return json.Marshal(struct {
		booking
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{
		booking:   booking(b),
		StartDate: dates.Format(b.StartDate),
		EndDate:   dates.Format(b.EndDate),
	})
}

// Arrival is a user's next upcoming stay.
type Arrival struct {
	Booking  Booking `json:"booking"`
	DaysLeft int     `json:"days_left"`
}
