package models

// EventView is a booking projected for an all-day calendar. End is exclusive:
// the day after the last booked day.
type EventView struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Start         string        `json:"start"`
	End           string        `json:"end"`
	AllDay        bool          `json:"allDay"`
	Color         string        `json:"color"`
	Editable      bool          `json:"editable"`
	ExtendedProps EventExtProps `json:"extendedProps"`
}

type EventExtProps struct {
	CanEdit    bool   `json:"canEdit"`
	Companions string `json:"companions"`
	OwnerID    int64  `json:"ownerId"`
	Nights     int    `json:"nights"`
	DaysLeft   int    `json:"daysLeft"`
}

// Slot is a free date range offered as an alternative to a conflicting request.
type Slot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Nights int    `json:"nights"`
}

// DensityPoint counts the bookings that begin on Date.
type DensityPoint struct {
	Date    string `json:"date"`
	Density int    `json:"density"`
}
