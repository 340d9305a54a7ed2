package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type Repository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	// CompletedRevenue sums line items of Completed appointments.
	CompletedRevenue(ctx context.Context) (float64, error)
	// ListForDate preloads customer, vehicle and line items, ordered by time.
	ListForDate(ctx context.Context, date string) ([]models.Appointment, error)

	CountCompletedFor(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountVehiclesFor(ctx context.Context, customerID uuid.UUID) (int64, error)
}
