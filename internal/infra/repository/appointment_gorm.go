package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

var _ domain.Repository = (*AppointmentGormRepository)(nil)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	id uuid.UUID,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AppointmentGormRepository) GetVehicle(
	ctx context.Context,
	id uuid.UUID,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *AppointmentGormRepository) FindServiceOffers(
	ctx context.Context,
	ids []uuid.UUID,
) ([]models.ServiceOffer, error) {

	var offers []models.ServiceOffer
	if len(ids) == 0 {
		return offers, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// --------------------------------------------------
// Slot occupancy
// --------------------------------------------------

// CountActiveAtSlot locks the rows it sees; the partial unique index covers inserts
// that race past it.
func (r *AppointmentGormRepository) CountActiveAtSlot(
	ctx context.Context,
	slot domain.Slot,
	excluding *uuid.UUID,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"slot_date = ? AND slot_time = ? AND is_deleted = ? AND status IN ?",
			slot.Date,
			slot.Time,
			false,
			domain.OccupyingStatuses(),
		)
	if excluding != nil {
		q = q.Where("id <> ?", *excluding)
	}

	var ids []uuid.UUID
	if err := q.Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *AppointmentGormRepository) ListActiveOnDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "slot_date", "slot_time", "status", "is_deleted").
		Where(
			"slot_date = ? AND is_deleted = ? AND status IN ?",
			date,
			false,
			domain.OccupyingStatuses(),
		).
		Order("slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).
		Omit("Customer", "Vehicle").
		Create(ap).Error
	return translateWrite(err, httperr.CodeSlotConflict)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := preloadAppointment(r.db.WithContext(ctx)).
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"slot_date":      ap.SlotDate,
			"slot_time":      ap.SlotTime,
			"status":         ap.Status,
			"status_message": ap.StatusMessage,
			"is_deleted":     ap.IsDeleted,
		})
	if res.Error != nil {
		return translateWrite(res.Error, httperr.CodeSlotConflict)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {

	db := r.db.WithContext(ctx)

	if err := db.
		Where("appointment_id = ?", id).
		Delete(&models.AppointmentLineItem{}).Error; err != nil {
		return err
	}

	res := db.Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := preloadAppointment(r.db.WithContext(ctx))

	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("slot_date = ?", filter.Date)
	}

	var apps []models.Appointment
	if err := q.
		Order("slot_date DESC").
		Order("slot_time DESC").
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *AppointmentGormRepository) AppendHistory(
	ctx context.Context,
	rec *models.HistoryRecord,
) error {
	return appendHistory(r.db.WithContext(ctx), rec)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func preloadAppointment(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Vehicle").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func appendHistory(db *gorm.DB, rec *models.HistoryRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return db.Create(rec).Error
}
