package bookings

// Selection is the transient start/end pair a guest builds up on the detail
// view calendar. Either endpoint may be absent while picking is in progress.
type Selection struct {
	Start *Date `json:"start,omitempty"`
	End   *Date `json:"end,omitempty"`
}

// Complete reports whether both endpoints have been chosen.
func (s Selection) Complete() bool {
	return s.Start != nil && s.End != nil
}

// Clear resets both endpoints.
func (s *Selection) Clear() {
	s.Start = nil
	s.End = nil
}

// Select validates a candidate range against today's lower bound and the
// existing bookings, and adopts it only when valid. Every day of the
// inclusive span is checked: two free endpoints straddling a booked middle
// day must not pass. On error the current selection is left unchanged.
func (s *Selection) Select(start, end Date, existing []Booking, today Date) error {
	if start.Before(today) {
		return ErrPastDate
	}
	if end.Before(start) {
		return ErrInvertedRange
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if IsBlocked(d, existing) {
			return ErrDateBlocked
		}
	}
	s.Start = &start
	s.End = &end
	return nil
}
