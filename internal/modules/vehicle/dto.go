package vehicle

type CreateVehicleRequest struct {
	VehicleName        string  `json:"vehicle_name" validate:"required"`
	Type               string  `json:"type" validate:"required"`
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	DailyRentPrice     float64 `json:"daily_rent_price" validate:"required"`
	AvailabilityStatus string  `json:"availability_status,omitempty"`
}

// UpdateVehicleRequest is a partial patch; nil means "leave untouched".
type UpdateVehicleRequest struct {
	VehicleName        *string  `json:"vehicle_name,omitempty"`
	Type               *string  `json:"type,omitempty"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	DailyRentPrice     *float64 `json:"daily_rent_price,omitempty"`
	AvailabilityStatus *string  `json:"availability_status,omitempty"`
}
