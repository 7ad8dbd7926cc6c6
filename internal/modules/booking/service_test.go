package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIDAndCustomer(ctx context.Context, id, customerID int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) GetAllWithDetails(ctx context.Context) ([]repository.BookingDetails, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) GetByCustomerWithDetails(ctx context.Context, customerID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ClaimAvailable(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) SetStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func availableCamry() *domain.Vehicle {
	return &domain.Vehicle{
		ID:                 1,
		VehicleName:        "Toyota Camry",
		Type:               "car",
		RegistrationNumber: "ABC123",
		DailyRentPrice:     50.00,
		AvailabilityStatus: domain.VehicleAvailable,
	}
}

func TestService_Create_Success(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, int64(1)).Return(availableCamry(), nil)
	vehicles.On("ClaimAvailable", mock.Anything, int64(1)).Return(true, nil)

	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, vehicles)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		VehicleID:     1,
		RentStartDate: "2024-12-20",
		RentEndDate:   "2024-12-25",
	}, 7)

	assert.NoError(t, err)
	assert.Equal(t, 250.00, b.TotalPrice) // 5 days x 50.00
	assert.Equal(t, domain.BookingActive, b.Status)
	assert.Equal(t, int64(7), b.CustomerID)
	vehicles.AssertCalled(t, "ClaimAvailable", mock.Anything, int64(1))
}

func TestService_Create_VehicleBooked(t *testing.T) {
	v := availableCamry()
	v.AvailabilityStatus = domain.VehicleBooked

	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, int64(1)).Return(v, nil)

	bookings := new(MockBookingRepository)
	service := NewService(bookings, vehicles)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		VehicleID:     1,
		RentStartDate: "2024-12-20",
		RentEndDate:   "2024-12-25",
	}, 7)

	assert.ErrorIs(t, err, ErrNotAvailable)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_VehicleMissing(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockBookingRepository), vehicles)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		VehicleID:     404,
		RentStartDate: "2024-12-20",
		RentEndDate:   "2024-12-25",
	}, 7)

	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_Create_ClaimLost(t *testing.T) {
	// vehicle read as available, but another request claims it first
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, int64(1)).Return(availableCamry(), nil)
	vehicles.On("ClaimAvailable", mock.Anything, int64(1)).Return(false, nil)

	bookings := new(MockBookingRepository)
	service := NewService(bookings, vehicles)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		VehicleID:     1,
		RentStartDate: "2024-12-20",
		RentEndDate:   "2024-12-25",
	}, 7)

	assert.ErrorIs(t, err, ErrNotAvailable)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_EndNotAfterStart(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, int64(1)).Return(availableCamry(), nil)

	service := NewService(new(MockBookingRepository), vehicles)

	for _, end := range []string{"2024-12-20", "2024-12-19"} {
		_, err := service.Create(context.Background(), CreateBookingRequest{
			VehicleID:     1,
			RentStartDate: "2024-12-20",
			RentEndDate:   end,
		}, 7)
		assert.ErrorIs(t, err, ErrInvalidDates)
	}
}

func TestService_Create_BadDateFormat(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockVehicleRepository))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		VehicleID:     1,
		RentStartDate: "20-12-2024",
		RentEndDate:   "2024-12-25",
	}, 7)

	assert.ErrorIs(t, err, ErrBadDateInput)
}

func TestService_Create_ReleasesClaimOnInsertFailure(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, int64(1)).Return(availableCamry(), nil)
	vehicles.On("ClaimAvailable", mock.Anything, int64(1)).Return(true, nil)
	vehicles.On("SetStatus", mock.Anything, int64(1), domain.VehicleAvailable).Return(nil)

	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrInvalidData)

	service := NewService(bookings, vehicles)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		VehicleID:     1,
		RentStartDate: "2024-12-20",
		RentEndDate:   "2024-12-25",
	}, 7)

	assert.Error(t, err)
	vehicles.AssertCalled(t, "SetStatus", mock.Anything, int64(1), domain.VehicleAvailable)
}

func TestService_Cancel_BeforeStart(t *testing.T) {
	start := time.Now().Add(48 * time.Hour)

	bookings := new(MockBookingRepository)
	bookings.On("GetByIDAndCustomer", mock.Anything, int64(10), int64(7)).Return(&domain.Booking{
		ID:            10,
		CustomerID:    7,
		VehicleID:     1,
		RentStartDate: start,
		Status:        domain.BookingActive,
	}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(10), domain.BookingCancelled).Return(nil)

	vehicles := new(MockVehicleRepository)
	vehicles.On("SetStatus", mock.Anything, int64(1), domain.VehicleAvailable).Return(nil)

	service := NewService(bookings, vehicles)

	err := service.Cancel(context.Background(), 10, 7)

	assert.NoError(t, err)
	bookings.AssertCalled(t, "UpdateStatus", mock.Anything, int64(10), domain.BookingCancelled)
	vehicles.AssertCalled(t, "SetStatus", mock.Anything, int64(1), domain.VehicleAvailable)
}

func TestService_Cancel_OnOrAfterStart(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByIDAndCustomer", mock.Anything, int64(10), int64(7)).Return(&domain.Booking{
		ID:            10,
		CustomerID:    7,
		VehicleID:     1,
		RentStartDate: time.Now().Add(-24 * time.Hour),
		Status:        domain.BookingActive,
	}, nil)

	service := NewService(bookings, new(MockVehicleRepository))

	err := service.Cancel(context.Background(), 10, 7)

	assert.ErrorIs(t, err, ErrCancelAfterStart)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_ForeignBookingReadsAsNotFound(t *testing.T) {
	// booking 10 belongs to customer 7; customer 8 must get the same
	// answer as for a booking that does not exist
	bookings := new(MockBookingRepository)
	bookings.On("GetByIDAndCustomer", mock.Anything, int64(10), int64(8)).Return(nil, gorm.ErrRecordNotFound)
	bookings.On("GetByIDAndCustomer", mock.Anything, int64(111), int64(8)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(bookings, new(MockVehicleRepository))

	errForeign := service.Cancel(context.Background(), 10, 8)
	errMissing := service.Cancel(context.Background(), 111, 8)

	assert.ErrorIs(t, errForeign, ErrNotFoundOrNotOwned)
	assert.Equal(t, errMissing, errForeign)
}

func TestService_MarkReturned_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:        10,
		VehicleID: 1,
		Status:    domain.BookingActive,
	}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(10), domain.BookingReturned).Return(nil)

	vehicles := new(MockVehicleRepository)
	vehicles.On("SetStatus", mock.Anything, int64(1), domain.VehicleAvailable).Return(nil)

	service := NewService(bookings, vehicles)

	assert.NoError(t, service.MarkReturned(context.Background(), 10))
	vehicles.AssertCalled(t, "SetStatus", mock.Anything, int64(1), domain.VehicleAvailable)
}

func TestService_MarkReturned_AlreadyReturnedIsIdempotent(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:        10,
		VehicleID: 1,
		Status:    domain.BookingReturned,
	}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(10), domain.BookingReturned).Return(nil)

	vehicles := new(MockVehicleRepository)
	vehicles.On("SetStatus", mock.Anything, int64(1), domain.VehicleAvailable).Return(nil)

	service := NewService(bookings, vehicles)

	assert.NoError(t, service.MarkReturned(context.Background(), 10))
}

func TestService_MarkReturned_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(bookings, new(MockVehicleRepository))

	assert.ErrorIs(t, service.MarkReturned(context.Background(), 404), ErrBookingNotFound)
}

func TestService_List_RoleScoped(t *testing.T) {
	all := []repository.BookingDetails{{ID: 1}, {ID: 2}, {ID: 3}}
	mine := []repository.BookingDetails{{ID: 2, CustomerID: 7}}

	bookings := new(MockBookingRepository)
	bookings.On("GetAllWithDetails", mock.Anything).Return(all, nil)
	bookings.On("GetByCustomerWithDetails", mock.Anything, int64(7)).Return(mine, nil)

	service := NewService(bookings, new(MockVehicleRepository))

	adminRows, err := service.List(context.Background(), 1, "admin")
	assert.NoError(t, err)
	assert.Len(t, adminRows, 3)

	customerRows, err := service.List(context.Background(), 7, "customer")
	assert.NoError(t, err)
	assert.Len(t, customerRows, 1)
	assert.Equal(t, int64(7), customerRows[0].CustomerID)
}
