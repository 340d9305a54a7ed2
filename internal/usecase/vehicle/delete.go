package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/vehicle"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
)

// DeleteVehicle removes the vehicle with every appointment booked on it, whatever
// their status, and writes a single Vehicle history record.
type DeleteVehicle struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeleteVehicle(repo domain.Repository, audit *audit.Logger) *DeleteVehicle {
	return &DeleteVehicle{repo: repo, audit: audit}
}

func (uc *DeleteVehicle) Execute(
	ctx context.Context,
	actor identity.Actor,
	vehicleID uuid.UUID,
) error {

	var removed int64

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		v, err := tx.GetVehicle(ctx, vehicleID)
		if err != nil {
			return httperr.MapNotFound(err, "vehicle")
		}
		if !actor.IsOperator() && !actor.Owns(v.CustomerID) {
			return httperr.ErrBusinessf(httperr.CodeUnauthorized, "not your vehicle")
		}

		snapshot := audit.VehicleSnapshot(v)

		removed, err = tx.DeleteAppointmentsForVehicle(ctx, v.ID)
		if err != nil {
			return err
		}

		if err := tx.DeleteVehicle(ctx, v.ID); err != nil {
			return httperr.MapNotFound(err, "vehicle")
		}

		return uc.audit.Log(ctx, tx, actor.ID, audit.ItemVehicle, v.ID, snapshot...)
	})
	if err != nil {
		return err
	}

	logger.Info("vehicle deleted",
		"vehicle_id", vehicleID,
		"appointments_removed", removed,
	)
	return nil
}
