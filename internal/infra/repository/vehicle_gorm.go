package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/vehicle"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

var _ vehicle.Repository = (*VehicleGormRepository)(nil)

type VehicleGormRepository struct {
	db *gorm.DB
}

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) Transaction(
	ctx context.Context,
	fn func(tx vehicle.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&VehicleGormRepository{db: tx})
	})
}

func (r *VehicleGormRepository) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *VehicleGormRepository) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	err := r.db.WithContext(ctx).
		Omit("Customer").
		Create(v).Error
	return translateWrite(err, httperr.CodeDuplicateName)
}

func (r *VehicleGormRepository) UpdateVehicle(ctx context.Context, v *models.Vehicle) error {
	res := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", v.ID).
		Updates(map[string]any{
			"brand":    v.Brand,
			"model":    v.Model,
			"plate_no": v.PlateNo,
		})
	if res.Error != nil {
		return translateWrite(res.Error, httperr.CodeDuplicateName)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleGormRepository) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleGormRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Vehicle, error) {
	var vs []models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", ownerID).
		Order("plate_no ASC").
		Find(&vs).Error; err != nil {
		return nil, err
	}
	return vs, nil
}

func (r *VehicleGormRepository) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	var vs []models.Vehicle
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("plate_no ASC").
		Find(&vs).Error; err != nil {
		return nil, err
	}
	return vs, nil
}

func (r *VehicleGormRepository) DeleteAppointmentsForVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	db := r.db.WithContext(ctx)

	sub := db.Model(&models.Appointment{}).
		Select("id").
		Where("vehicle_id = ?", vehicleID)

	if err := db.
		Where("appointment_id IN (?)", sub).
		Delete(&models.AppointmentLineItem{}).Error; err != nil {
		return 0, err
	}

	res := db.Where("vehicle_id = ?", vehicleID).Delete(&models.Appointment{})
	return res.RowsAffected, res.Error
}

func (r *VehicleGormRepository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleGormRepository) AppendHistory(ctx context.Context, rec *models.HistoryRecord) error {
	return appendHistory(r.db.WithContext(ctx), rec)
}
