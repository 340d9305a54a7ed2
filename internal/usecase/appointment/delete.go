package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
)

type DeleteAppointmentInput struct {
	Actor         identity.Actor
	AppointmentID uuid.UUID

	// ExpectedStatus, when set, must match the stored status.
	ExpectedStatus string
}

// DeleteAppointment removes the appointment and its line items. The history
// record is the only trace left.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	in DeleteAppointmentInput,
) error {

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment")
		}

		if !in.Actor.IsOperator() && !in.Actor.Owns(ap.CustomerID) {
			return httperr.ErrBusinessf(httperr.CodeUnauthorized, "not your appointment")
		}

		if in.ExpectedStatus != "" && in.ExpectedStatus != ap.Status {
			return httperr.ErrBusinessf(
				httperr.CodeInvalidState,
				"status is "+ap.Status+", not "+in.ExpectedStatus,
			)
		}

		if err := domain.CanDelete(in.Actor.Role, domain.Status(ap.Status)); err != nil {
			return err
		}

		snapshot := audit.DeletedAppointmentSnapshot(ap)

		if err := tx.DeleteAppointment(ctx, ap.ID); err != nil {
			return httperr.MapNotFound(err, "appointment")
		}

		return uc.audit.Log(
			ctx,
			tx,
			in.Actor.ID,
			audit.ItemAppointment,
			ap.ID,
			snapshot...,
		)
	})
	if err != nil {
		return err
	}

	logger.Info("appointment deleted",
		"appointment_id", in.AppointmentID,
		"role", in.Actor.Role,
	)
	return nil
}
