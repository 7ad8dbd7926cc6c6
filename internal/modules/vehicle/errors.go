package vehicle

import "errors"

var (
	ErrMissingFields      = errors.New("All fields are required: vehicle_name, type, registration_number, daily_rent_price")
	ErrInvalidType        = errors.New("Vehicle type must be: car, bike, van, or SUV")
	ErrInvalidPrice       = errors.New("Daily rent price must be positive")
	ErrInvalidStatus      = errors.New("Availability status must be: available or booked")
	ErrRegistrationExists = errors.New("Registration number already exists")
	ErrVehicleNotFound    = errors.New("Vehicle not found")
	ErrNoFields           = errors.New("No fields to update")
	ErrHasActiveBookings  = errors.New("Cannot delete vehicle with active bookings")
)
