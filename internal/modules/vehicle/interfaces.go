package vehicle

import (
	"context"

	"vehiclerental/internal/domain"
)

type VehicleRepositoryInterface interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetAll(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	RegistrationTakenByOther(ctx context.Context, regNumber string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type BookingCounter interface {
	CountActiveByVehicle(ctx context.Context, vehicleID int64) (int64, error)
}
