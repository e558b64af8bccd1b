package bookings

// IsBlocked reports whether d is covered by any existing booking. Interval
// boundaries are inclusive: a date equal to either endpoint counts as blocked,
// matching what the calendar renders as struck through.
func IsBlocked(d Date, existing []Booking) bool {
	for _, b := range existing {
		if b.Covers(d) {
			return true
		}
	}
	return false
}

// BlockedDates enumerates every blocked day in [from, to] inclusive.
func BlockedDates(existing []Booking, from, to Date) []Date {
	var blocked []Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		if IsBlocked(d, existing) {
			blocked = append(blocked, d)
		}
	}
	return blocked
}
