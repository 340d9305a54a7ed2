package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)

	// CreateVehicle and UpdateVehicle fail with duplicate_name on a taken plate.
	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	UpdateVehicle(ctx context.Context, v *models.Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Vehicle, error)
	// ListAll preloads each owner.
	ListAll(ctx context.Context) ([]models.Vehicle, error)

	// DeleteAppointmentsForVehicle removes every appointment (and line items) on the vehicle.
	DeleteAppointmentsForVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error)
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	AppendHistory(ctx context.Context, rec *models.HistoryRecord) error
}
