package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"vehiclerental/internal/database"
	"vehiclerental/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "rental_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()

	u := &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed",
		Phone:        "1234567890",
		Role:         domain.RoleCustomer,
	}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedVehicle(t *testing.T, db *gorm.DB, reg string, status domain.VehicleStatus) *domain.Vehicle {
	t.Helper()

	v := &domain.Vehicle{
		VehicleName:        "Toyota Camry",
		Type:               "car",
		RegistrationNumber: reg,
		DailyRentPrice:     50.00,
		AvailabilityStatus: status,
	}
	if err := NewVehicleRepository(db).Create(context.Background(), v); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}

func seedBooking(t *testing.T, db *gorm.DB, customerID, vehicleID int64, status domain.BookingStatus) *domain.Booking {
	t.Helper()

	b := &domain.Booking{
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		RentStartDate: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		RentEndDate:   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		TotalPrice:    250.00,
		Status:        status,
	}
	if err := NewBookingRepository(db).Create(context.Background(), b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func countBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&bookingModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return n
}

func TestUserRepository_Delete_CascadesClosedBookings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := seedUser(t, db, "john@example.com")
	v := seedVehicle(t, db, "ABC123", domain.VehicleAvailable)
	seedBooking(t, db, u.ID, v.ID, domain.BookingReturned)
	seedBooking(t, db, u.ID, v.ID, domain.BookingCancelled)

	err := NewUserRepository(db).Delete(ctx, u.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), countBookings(t, db))

	// the vehicle the bookings referenced is untouched
	remaining, err := NewVehicleRepository(db).GetByID(ctx, v.ID)
	assert.NoError(t, err)
	assert.Equal(t, v.ID, remaining.ID)
}

func TestVehicleRepository_Delete_CascadesClosedBookings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := seedUser(t, db, "jane@example.com")
	v := seedVehicle(t, db, "XYZ789", domain.VehicleAvailable)
	seedBooking(t, db, u.ID, v.ID, domain.BookingReturned)

	err := NewVehicleRepository(db).Delete(ctx, v.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), countBookings(t, db))

	// the customer the booking referenced is untouched
	remaining, err := NewUserRepository(db).GetByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, remaining.ID)
}

func TestVehicleRepository_ClaimAvailable_OnlyOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	v := seedVehicle(t, db, "CLAIM01", domain.VehicleAvailable)
	repo := NewVehicleRepository(db)

	claimed, err := repo.ClaimAvailable(ctx, v.ID)
	assert.NoError(t, err)
	assert.True(t, claimed)

	// already booked now, a second claim must lose
	claimed, err = repo.ClaimAvailable(ctx, v.ID)
	assert.NoError(t, err)
	assert.False(t, claimed)
}
