package bookings

// Nights returns the night count for a selection: the end-exclusive day
// difference, so a one-night stay has end = start + 1 day. An incomplete
// selection prices as zero nights.
func Nights(sel Selection) int {
	if !sel.Complete() {
		return 0
	}
	n := sel.Start.DaysUntil(*sel.End)
	if n < 0 {
		return 0
	}
	return n
}

// Total returns the stay price in whole currency units. Rates are stored as
// whole-unit amounts, so this is plain integer multiplication.
func Total(nights, nightlyRate int) int {
	return nights * nightlyRate
}
