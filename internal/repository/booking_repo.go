package repository

import (
	"context"
	"time"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CustomerID    int64     `gorm:"column:customer_id"`
	VehicleID     int64     `gorm:"column:vehicle_id"`
	RentStartDate time.Time `gorm:"column:rent_start_date"`
	RentEndDate   time.Time `gorm:"column:rent_end_date"`
	TotalPrice    float64   `gorm:"column:total_price"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// BookingDetails is a booking row joined with the customer and vehicle
// names for the listing endpoint.
type BookingDetails struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customer_id"`
	VehicleID     int64     `json:"vehicle_id"`
	RentStartDate time.Time `json:"rent_start_date"`
	RentEndDate   time.Time `json:"rent_end_date"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	CustomerName  string    `json:"customer_name"`
	VehicleName   string    `json:"vehicle_name"`
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		VehicleID:     m.VehicleID,
		RentStartDate: m.RentStartDate,
		RentEndDate:   m.RentEndDate,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		VehicleID:     b.VehicleID,
		RentStartDate: b.RentStartDate,
		RentEndDate:   b.RentEndDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetByIDAndCustomer returns the booking only when it belongs to the given
// customer. A foreign booking comes back as ErrRecordNotFound, same as a
// missing one.
func (r *BookingRepository) GetByIDAndCustomer(ctx context.Context, id, customerID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

const bookingDetailsQuery = `
SELECT b.id, b.customer_id, b.vehicle_id, b.rent_start_date, b.rent_end_date,
       b.total_price, b.status, b.created_at,
       u.name AS customer_name, v.vehicle_name AS vehicle_name
FROM bookings b
JOIN users u ON b.customer_id = u.id
JOIN vehicles v ON b.vehicle_id = v.id
`

func (r *BookingRepository) GetAllWithDetails(ctx context.Context) ([]BookingDetails, error) {
	var rows []BookingDetails
	tx := r.db.WithContext(ctx).Raw(bookingDetailsQuery + " ORDER BY b.created_at DESC").Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetByCustomerWithDetails(ctx context.Context, customerID int64) ([]BookingDetails, error) {
	var rows []BookingDetails
	tx := r.db.WithContext(ctx).
		Raw(bookingDetailsQuery+" WHERE b.customer_id = ? ORDER BY b.created_at DESC", customerID).
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) CountActiveByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("customer_id = ? AND status = ?", customerID, string(domain.BookingActive)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) CountActiveByVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, string(domain.BookingActive)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
