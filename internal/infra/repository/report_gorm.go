package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

var _ report.Repository = (*ReportGormRepository)(nil)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("role = ?", models.RoleCustomer).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ? AND is_deleted = ?", string(domain.StatusPending), false).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.AppointmentLineItem{}).
		Select("COALESCE(SUM(appointment_line_items.labor_rate), 0)").
		Joins("JOIN appointments ON appointments.id = appointment_line_items.appointment_id").
		Where("appointments.status = ?", string(domain.StatusCompleted)).
		Scan(&total).Error
	return models.RoundMoney(total), err
}

func (r *ReportGormRepository) ListForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := preloadAppointment(r.db.WithContext(ctx)).
		Where("slot_date = ?", date).
		Order("slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ReportGormRepository) CountCompletedFor(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("customer_id = ? AND status = ? AND is_deleted = ?",
			customerID, string(domain.StatusCompleted), false).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountVehiclesFor(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("customer_id = ?", customerID).
		Count(&n).Error
	return n, err
}
