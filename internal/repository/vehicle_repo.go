package repository

import (
	"context"
	"time"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	VehicleName        string    `gorm:"column:vehicle_name"`
	Type               string    `gorm:"column:type"`
	RegistrationNumber string    `gorm:"column:registration_number"`
	DailyRentPrice     float64   `gorm:"column:daily_rent_price"`
	AvailabilityStatus string    `gorm:"column:availability_status"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:                 m.ID,
		VehicleName:        m.VehicleName,
		Type:               m.Type,
		RegistrationNumber: m.RegistrationNumber,
		DailyRentPrice:     m.DailyRentPrice,
		AvailabilityStatus: domain.VehicleStatus(m.AvailabilityStatus),
		CreatedAt:          m.CreatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:                 v.ID,
		VehicleName:        v.VehicleName,
		Type:               v.Type,
		RegistrationNumber: v.RegistrationNumber,
		DailyRentPrice:     v.DailyRentPrice,
		AvailabilityStatus: string(v.AvailabilityStatus),
		CreatedAt:          v.CreatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	var models []vehicleModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) RegistrationTakenByOther(ctx context.Context, regNumber string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("registration_number = ? AND id != ?", regNumber, excludeID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *VehicleRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*domain.Vehicle, error) {
	if len(fields) > 0 {
		tx := r.db.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", id).Updates(fields)
		if tx.Error != nil {
			return nil, tx.Error
		}
	}
	return r.GetByID(ctx, id)
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&vehicleModel{}, id).Error
}

// ClaimAvailable flips an available vehicle to booked in one conditional
// UPDATE. Returns false when the vehicle was already booked (or gone), so
// two concurrent bookings cannot both win the same vehicle.
func (r *VehicleRepository) ClaimAvailable(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("id = ? AND availability_status = ?", id, string(domain.VehicleAvailable)).
		Update("availability_status", string(domain.VehicleBooked))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *VehicleRepository) SetStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	return r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("id = ?", id).
		Update("availability_status", string(status)).Error
}
