package bookings

import "context"

// Flow is the detail-view controller for one property page: it owns the
// selection, the loaded bookings, the submitting flag and the last error, and
// every mutation goes through its methods. It replaces the UI framework's
// reactive state with an explicit object.
//
// A Flow belongs to a single session and is not safe for concurrent use; the
// isSubmitting flag only guards against double submission from that session,
// not against other sessions racing on the same property.
type Flow struct {
	svc          *Service
	propertyID   int64
	nightlyRate  int
	userID       string
	bookings     []Booking
	selection    Selection
	isSubmitting bool
	lastErr      error
}

// NewFlow creates the controller for a property detail view.
func NewFlow(svc *Service, propertyID int64, nightlyRate int, userID string) *Flow {
	if svc == nil {
		panic("bookings: service required")
	}
	return &Flow{
		svc:         svc,
		propertyID:  propertyID,
		nightlyRate: nightlyRate,
		userID:      userID,
	}
}

// Open loads the property's bookings so the calendar can mark blocked dates.
func (f *Flow) Open(ctx context.Context) error {
	list, err := f.svc.ListBookings(ctx, f.propertyID)
	if err != nil {
		f.lastErr = err
		return err
	}
	f.bookings = list
	return nil
}

// Bookings returns the currently loaded reservations.
func (f *Flow) Bookings() []Booking {
	return f.bookings
}

// Selection returns the current range selection.
func (f *Flow) Selection() Selection {
	return f.selection
}

// IsBlockedDate reports whether the calendar should strike through d.
func (f *Flow) IsBlockedDate(d Date) bool {
	return IsBlocked(d, f.bookings)
}

// SelectRange adopts a candidate range if no day in it is blocked and the
// start is not in the past. An invalid pick leaves the selection unchanged.
func (f *Flow) SelectRange(start, end Date) error {
	if err := f.selection.Select(start, end, f.bookings, Today()); err != nil {
		f.lastErr = err
		return err
	}
	f.lastErr = nil
	return nil
}

// ClearRange resets the selection, as when navigating away.
func (f *Flow) ClearRange() {
	f.selection.Clear()
}

// Quote returns the night count and total price for the current selection.
func (f *Flow) Quote() (nights, total int) {
	nights = Nights(f.selection)
	return nights, Total(nights, f.nightlyRate)
}

// IsSubmitting reports whether a reservation is in flight; the submit control
// stays disabled while true.
func (f *Flow) IsSubmitting() bool {
	return f.isSubmitting
}

// Err returns the last user-visible error, nil after a successful action.
func (f *Flow) Err() error {
	return f.lastErr
}

// Reserve submits the current selection. Success refreshes the bookings and
// clears the selection; failure keeps the selection so the guest can retry.
func (f *Flow) Reserve(ctx context.Context) error {
	if f.isSubmitting {
		return ErrSubmitInFlight
	}
	f.isSubmitting = true
	defer func() { f.isSubmitting = false }()

	booking, refreshed, err := f.svc.Submit(ctx, f.propertyID, f.userID, f.selection)
	if err != nil {
		f.lastErr = err
		return err
	}

	if refreshed != nil {
		f.bookings = refreshed
	} else {
		f.bookings = append(f.bookings, *booking)
	}
	f.selection.Clear()
	f.lastErr = nil
	return nil
}
