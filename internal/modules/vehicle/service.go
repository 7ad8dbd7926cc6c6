package vehicle

import (
	"context"
	"errors"
	"strings"

	"vehiclerental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	vehicles VehicleRepositoryInterface
	bookings BookingCounter
}

func NewService(vehicles VehicleRepositoryInterface, bookings BookingCounter) *Service {
	return &Service{
		vehicles: vehicles,
		bookings: bookings,
	}
}

func (s *Service) Create(ctx context.Context, req CreateVehicleRequest) (*domain.Vehicle, error) {
	if req.VehicleName == "" || req.Type == "" || req.RegistrationNumber == "" || req.DailyRentPrice == 0 {
		return nil, ErrMissingFields
	}
	if !domain.ValidVehicleType(req.Type) {
		return nil, ErrInvalidType
	}
	if req.DailyRentPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	status := req.AvailabilityStatus
	if status == "" {
		status = string(domain.VehicleAvailable)
	}
	if !domain.ValidVehicleStatus(status) {
		return nil, ErrInvalidStatus
	}

	taken, err := s.vehicles.RegistrationTakenByOther(ctx, req.RegistrationNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrRegistrationExists
	}

	v := &domain.Vehicle{
		VehicleName:        req.VehicleName,
		Type:               strings.ToLower(req.Type),
		RegistrationNumber: req.RegistrationNumber,
		DailyRentPrice:     req.DailyRentPrice,
		AvailabilityStatus: domain.VehicleStatus(status),
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrRegistrationExists
		}
		return nil, err
	}

	return v, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	existing, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}

	fields := map[string]any{}

	if req.VehicleName != nil {
		fields["vehicle_name"] = *req.VehicleName
	}

	if req.Type != nil {
		if !domain.ValidVehicleType(*req.Type) {
			return nil, ErrInvalidType
		}
		fields["type"] = strings.ToLower(*req.Type)
	}

	if req.DailyRentPrice != nil {
		if *req.DailyRentPrice <= 0 {
			return nil, ErrInvalidPrice
		}
		fields["daily_rent_price"] = *req.DailyRentPrice
	}

	if req.AvailabilityStatus != nil {
		if !domain.ValidVehicleStatus(*req.AvailabilityStatus) {
			return nil, ErrInvalidStatus
		}
		fields["availability_status"] = *req.AvailabilityStatus
	}

	if req.RegistrationNumber != nil {
		if *req.RegistrationNumber != existing.RegistrationNumber {
			taken, err := s.vehicles.RegistrationTakenByOther(ctx, *req.RegistrationNumber, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrRegistrationExists
			}
		}
		fields["registration_number"] = *req.RegistrationNumber
	}

	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	return s.vehicles.UpdateFields(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.vehicles.GetByID(ctx, id); err != nil {
		return ErrVehicleNotFound
	}

	active, err := s.bookings.CountActiveByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveBookings
	}

	return s.vehicles.Delete(ctx, id)
}
