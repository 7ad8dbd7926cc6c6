package domain

import (
	"strings"
	"time"
)

type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "available"
	VehicleBooked    VehicleStatus = "booked"
)

func ValidVehicleStatus(s string) bool {
	return s == string(VehicleAvailable) || s == string(VehicleBooked)
}

// VehicleTypes is the accepted set. The "SUV" entry keeps the original
// system's casing: inputs are lowercased before the membership check, so
// "SUV" in any spelling never passes. See DESIGN.md before changing this.
var VehicleTypes = []string{"car", "bike", "van", "SUV"}

func ValidVehicleType(t string) bool {
	folded := strings.ToLower(t)
	for _, v := range VehicleTypes {
		if folded == v {
			return true
		}
	}
	return false
}

type Vehicle struct {
	ID                 int64         `json:"id" gorm:"primaryKey"`
	VehicleName        string        `json:"vehicle_name" gorm:"size:100;not null"`
	Type               string        `json:"type" gorm:"size:20;not null"`
	RegistrationNumber string        `json:"registration_number" gorm:"size:50;uniqueIndex;not null"`
	DailyRentPrice     float64       `json:"daily_rent_price" gorm:"type:decimal(10,2);not null"`
	AvailabilityStatus VehicleStatus `json:"availability_status" gorm:"size:20;default:available"`
	CreatedAt          time.Time     `json:"created_at"`
}
