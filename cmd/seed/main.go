package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vehiclerental/internal/database"
	"vehiclerental/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (bookings first, they reference the other tables)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	admin := domain.User{
		Name:         "Admin User",
		Email:        "admin@rental.com",
		PasswordHash: mustHash("admin123"),
		Phone:        "1234567890",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@rental.com / admin123")

	customers := []domain.User{
		{Name: "John Doe", Email: "john@example.com", PasswordHash: mustHash("customer123"), Phone: "1111111111", Role: domain.RoleCustomer},
		{Name: "Jane Smith", Email: "jane@example.com", PasswordHash: mustHash("customer123"), Phone: "2222222222", Role: domain.RoleCustomer},
		{Name: "Bob Wilson", Email: "bob@example.com", PasswordHash: mustHash("customer123"), Phone: "3333333333", Role: domain.RoleCustomer},
	}
	for i := range customers {
		db.Create(&customers[i])
	}

	log.Println("Creating vehicles...")

	vehicles := []domain.Vehicle{
		{VehicleName: "Toyota Camry", Type: "car", RegistrationNumber: "ABC123", DailyRentPrice: 50.00, AvailabilityStatus: domain.VehicleAvailable},
		{VehicleName: "Honda Civic", Type: "car", RegistrationNumber: "XYZ789", DailyRentPrice: 45.00, AvailabilityStatus: domain.VehicleAvailable},
		{VehicleName: "Harley Davidson", Type: "bike", RegistrationNumber: "BIKE001", DailyRentPrice: 30.00, AvailabilityStatus: domain.VehicleAvailable},
		{VehicleName: "Ford Transit", Type: "van", RegistrationNumber: "VAN123", DailyRentPrice: 80.00, AvailabilityStatus: domain.VehicleAvailable},
		{VehicleName: "Toyota RAV4", Type: "suv", RegistrationNumber: "SUV456", DailyRentPrice: 70.00, AvailabilityStatus: domain.VehicleAvailable},
		{VehicleName: "Tesla Model 3", Type: "car", RegistrationNumber: "TESLA001", DailyRentPrice: 100.00, AvailabilityStatus: domain.VehicleBooked},
	}
	for i := range vehicles {
		db.Create(&vehicles[i])
	}

	log.Println("Creating bookings...")

	bookings := []domain.Booking{
		{
			CustomerID:    customers[0].ID,
			VehicleID:     vehicles[5].ID,
			RentStartDate: date(2024, 12, 20),
			RentEndDate:   date(2024, 12, 25),
			TotalPrice:    500.00,
			Status:        domain.BookingActive,
		},
		{
			CustomerID:    customers[1].ID,
			VehicleID:     vehicles[1].ID,
			RentStartDate: date(2024, 12, 18),
			RentEndDate:   date(2024, 12, 22),
			TotalPrice:    180.00,
			Status:        domain.BookingReturned,
		},
		{
			CustomerID:    customers[2].ID,
			VehicleID:     vehicles[2].ID,
			RentStartDate: date(2024, 12, 15),
			RentEndDate:   date(2024, 12, 20),
			TotalPrice:    150.00,
			Status:        domain.BookingCancelled,
		},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}

	log.Println("Database seeded successfully!")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	return string(hash)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
