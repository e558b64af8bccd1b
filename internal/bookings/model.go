package bookings

import "time"

// Booking is a persisted reservation of a date range against a property.
// The range is inclusive on both ends at calendar-day granularity.
type Booking struct {
	ID         string    `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserID     string    `json:"user_id"`
	StartDate  Date      `json:"start_date"`
	EndDate    Date      `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Covers reports whether d falls within the booking's inclusive range.
func (b Booking) Covers(d Date) bool {
	return !d.Before(b.StartDate) && !d.After(b.EndDate)
}
