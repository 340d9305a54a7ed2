package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type ListFilter struct {
	CustomerID *uuid.UUID
	Status     string
	Date       string
}

// Repository is the ledger's storage port. Lookups return gorm.ErrRecordNotFound
// when nothing matches; constraint failures come back as business errors.
type Repository interface {
	// -------- Transaction --------
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Lookups --------
	GetCustomer(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Customer, error)

	GetVehicle(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Vehicle, error)

	FindServiceOffers(
		ctx context.Context,
		ids []uuid.UUID,
	) ([]models.ServiceOffer, error)

	// -------- Slot occupancy --------
	CountActiveAtSlot(
		ctx context.Context,
		slot Slot,
		excluding *uuid.UUID,
	) (int64, error)

	ListActiveOnDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointment loads customer, vehicle and ordered line items.
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// UpdateAppointment writes slot, status, message and soft-delete flag only.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- History --------
	AppendHistory(
		ctx context.Context,
		rec *models.HistoryRecord,
	) error
}
