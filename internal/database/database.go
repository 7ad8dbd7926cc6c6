package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"vehiclerental/internal/domain"
)

// Connect picks the driver from the DSN: postgres URLs go through the
// pgx-backed driver, anything else is treated as a local SQLite file.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			// SQLite ignores ON DELETE CASCADE unless foreign-key
			// enforcement is switched on per connection.
			DSN: dsn + "?_pragma=foreign_keys(1)",
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the users, vehicles and bookings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Vehicle{},
		&domain.Booking{},
	)
}
