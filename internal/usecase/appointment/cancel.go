package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

// CancelAppointment keeps the row: it flips status and the soft-delete flag,
// which frees the slot, and records what the appointment looked like.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	var canceled *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment")
		}

		if !actor.Owns(ap.CustomerID) {
			return httperr.ErrBusinessf(httperr.CodeUnauthorized, "only the owner can cancel")
		}

		snapshot := audit.AppointmentSnapshot(ap)

		if err := domain.Cancel(ap); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if err := uc.audit.Log(
			ctx,
			tx,
			actor.ID,
			audit.ItemAppointmentCanceled,
			ap.ID,
			snapshot...,
		); err != nil {
			return err
		}

		canceled = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("appointment canceled", "appointment_id", canceled.ID)

	return canceled, nil
}
