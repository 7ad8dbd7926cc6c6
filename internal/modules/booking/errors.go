package booking

import "errors"

var (
	ErrNotAvailable = errors.New("Vehicle not available")
	ErrInvalidDates = errors.New("End date must be after start date")
	ErrBadDateInput = errors.New("Dates must be in YYYY-MM-DD format")
	// one message for both "doesn't exist" and "belongs to someone else",
	// so callers cannot probe other customers' booking IDs
	ErrNotFoundOrNotOwned = errors.New("Booking not found or not authorized")
	ErrBookingNotFound    = errors.New("Booking not found")
	ErrCancelAfterStart   = errors.New("Cannot cancel booking after start date")
)
