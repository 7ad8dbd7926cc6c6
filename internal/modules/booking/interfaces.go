package booking

import (
	"context"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDAndCustomer(ctx context.Context, id, customerID int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	GetAllWithDetails(ctx context.Context) ([]repository.BookingDetails, error)
	GetByCustomerWithDetails(ctx context.Context, customerID int64) ([]repository.BookingDetails, error)
}

// VehicleRepositoryInterface — the slice of the vehicle store the
// booking lifecycle needs: read, atomic claim, release.
type VehicleRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	ClaimAvailable(ctx context.Context, id int64) (bool, error)
	SetStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
}
