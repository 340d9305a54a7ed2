package vehicle

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/vehicle"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type VehicleInput struct {
	Brand   string
	Model   string
	PlateNo string
}

func (in VehicleInput) normalize() (VehicleInput, error) {
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	if in.Brand == "" || in.Model == "" {
		return in, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "brand and model are required")
	}

	plate, err := domain.NormalizePlate(in.PlateNo)
	if err != nil {
		return in, err
	}
	in.PlateNo = plate
	return in, nil
}

// ======================================================
// Register
// ======================================================

type RegisterVehicle struct {
	repo domain.Repository
}

func NewRegisterVehicle(repo domain.Repository) *RegisterVehicle {
	return &RegisterVehicle{repo: repo}
}

func (uc *RegisterVehicle) Execute(
	ctx context.Context,
	owner identity.Actor,
	in VehicleInput,
) (*models.Vehicle, error) {

	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	v := &models.Vehicle{
		ID:         uuid.New(),
		CustomerID: owner.ID,
		Brand:      in.Brand,
		Model:      in.Model,
		PlateNo:    in.PlateNo,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetCustomer(ctx, owner.ID); err != nil {
			return httperr.MapNotFound(err, "customer")
		}
		return tx.CreateVehicle(ctx, v)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("vehicle registered", "vehicle_id", v.ID, "plate_no", v.PlateNo)
	return v, nil
}

// ======================================================
// Update
// ======================================================

type UpdateVehicle struct {
	repo domain.Repository
}

func NewUpdateVehicle(repo domain.Repository) *UpdateVehicle {
	return &UpdateVehicle{repo: repo}
}

func (uc *UpdateVehicle) Execute(
	ctx context.Context,
	actor identity.Actor,
	vehicleID uuid.UUID,
	in VehicleInput,
) (*models.Vehicle, error) {

	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	var updated *models.Vehicle

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		v, err := tx.GetVehicle(ctx, vehicleID)
		if err != nil {
			return httperr.MapNotFound(err, "vehicle")
		}
		if !actor.Owns(v.CustomerID) {
			return httperr.ErrBusinessf(httperr.CodeUnauthorized, "not your vehicle")
		}

		v.Brand = in.Brand
		v.Model = in.Model
		v.PlateNo = in.PlateNo

		if err := tx.UpdateVehicle(ctx, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("vehicle updated", "vehicle_id", updated.ID, "plate_no", updated.PlateNo)
	return updated, nil
}
