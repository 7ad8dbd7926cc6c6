package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepositoryInterface
	vehicles VehicleRepositoryInterface
}

func NewService(bookings BookingRepositoryInterface, vehicles VehicleRepositoryInterface) *Service {
	return &Service{
		bookings: bookings,
		vehicles: vehicles,
	}
}

// Create books a vehicle for a date range. The vehicle is claimed with a
// single conditional update, so two concurrent requests for the same
// vehicle cannot both succeed.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest, customerID int64) (*domain.Booking, error) {
	start, err := time.Parse(dateLayout, req.RentStartDate)
	if err != nil {
		return nil, ErrBadDateInput
	}
	end, err := time.Parse(dateLayout, req.RentEndDate)
	if err != nil {
		return nil, ErrBadDateInput
	}

	v, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// a missing vehicle reads the same as a booked one
			return nil, ErrNotAvailable
		}
		return nil, err
	}
	if v.AvailabilityStatus != domain.VehicleAvailable {
		return nil, ErrNotAvailable
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return nil, ErrInvalidDates
	}

	totalPrice := float64(days) * v.DailyRentPrice

	claimed, err := s.vehicles.ClaimAvailable(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// lost the race to another booking between the read and the claim
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		CustomerID:    customerID,
		VehicleID:     v.ID,
		RentStartDate: start,
		RentEndDate:   end,
		TotalPrice:    totalPrice,
		Status:        domain.BookingActive,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// release the claim so the vehicle is not stranded as booked
		_ = s.vehicles.SetStatus(ctx, v.ID, domain.VehicleAvailable)
		return nil, err
	}

	return b, nil
}

// Cancel is a customer action, allowed only strictly before the rental
// starts.
func (s *Service) Cancel(ctx context.Context, bookingID, customerID int64) error {
	b, err := s.bookings.GetByIDAndCustomer(ctx, bookingID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrNotOwned
		}
		return err
	}

	if !time.Now().Before(b.RentStartDate) {
		return ErrCancelAfterStart
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
		return err
	}

	return s.vehicles.SetStatus(ctx, b.VehicleID, domain.VehicleAvailable)
}

// MarkReturned closes out a rental. Ownership is not checked here: the
// route guard restricts this to admins. Re-returning an already closed
// booking is harmless and stays idempotent.
func (s *Service) MarkReturned(ctx context.Context, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingReturned); err != nil {
		return err
	}

	return s.vehicles.SetStatus(ctx, b.VehicleID, domain.VehicleAvailable)
}

// List is role-scoped: admins see every booking, customers only their own.
func (s *Service) List(ctx context.Context, userID int64, role string) ([]repository.BookingDetails, error) {
	if role == string(domain.RoleCustomer) {
		return s.bookings.GetByCustomerWithDetails(ctx, userID)
	}
	return s.bookings.GetAllWithDetails(ctx)
}
