package domain

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingReturned  BookingStatus = "returned"
)

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	CustomerID    int64         `json:"customer_id" gorm:"not null"`
	VehicleID     int64         `json:"vehicle_id" gorm:"not null"`
	RentStartDate time.Time     `json:"rent_start_date" gorm:"type:date;not null"`
	RentEndDate   time.Time     `json:"rent_end_date" gorm:"type:date;not null"`
	TotalPrice    float64       `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status        BookingStatus `json:"status" gorm:"size:20;default:active"`
	CreatedAt     time.Time     `json:"created_at"`

	// Historical bookings go with their owner: removing a user or a
	// vehicle must not be blocked by cancelled/returned rows.
	Customer *User    `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Vehicle  *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}
