package booking

type CreateBookingRequest struct {
	VehicleID     int64  `json:"vehicle_id"`
	RentStartDate string `json:"rent_start_date"`
	RentEndDate   string `json:"rent_end_date"`
}
