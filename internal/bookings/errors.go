package bookings

import "errors"

var (
	// ErrIncompleteRange is returned when a submit is attempted without both
	// endpoints selected.
	ErrIncompleteRange = errors.New("a start and end date are both required")

	// ErrInvertedRange is returned when the start date does not precede the end date.
	ErrInvertedRange = errors.New("start date must precede end date")

	// ErrDateBlocked is returned when a proposed range touches an already booked day.
	ErrDateBlocked = errors.New("selected range includes an unavailable date")

	// ErrPastDate is returned when the start of a proposed range is before today.
	ErrPastDate = errors.New("dates in the past cannot be selected")

	// ErrSubmitInFlight is returned when a reservation is attempted while a
	// previous one from the same session has not settled.
	ErrSubmitInFlight = errors.New("a reservation is already in progress")
)

// IsValidationError reports whether err is a user-correctable selection
// problem rather than a store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIncompleteRange) ||
		errors.Is(err, ErrInvertedRange) ||
		errors.Is(err, ErrDateBlocked) ||
		errors.Is(err, ErrPastDate)
}
