package user

import (
	"context"

	"vehiclerental/internal/domain"
)

type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	EmailTakenByOther(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// BookingCounter guards deletion: a user with an active rental stays.
type BookingCounter interface {
	CountActiveByCustomer(ctx context.Context, customerID int64) (int64, error)
}
