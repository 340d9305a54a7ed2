package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
)

type RescheduleAppointmentInput struct {
	Actor         identity.Actor
	AppointmentID uuid.UUID

	Date string
	Time string
}

type RescheduleAppointment struct {
	repo domain.Repository
	now  timezone.Clock
}

func NewRescheduleAppointment(
	repo domain.Repository,
	now timezone.Clock,
) *RescheduleAppointment {
	if now == nil {
		now = timezone.Now
	}
	return &RescheduleAppointment{
		repo: repo,
		now:  now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	slot, err := domain.ValidateSlot(in.Date, in.Time, uc.now())
	if err != nil {
		return nil, err
	}

	var moved *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment")
		}

		if !in.Actor.Owns(ap.CustomerID) {
			return httperr.ErrBusinessf(httperr.CodeUnauthorized, "only the owner can reschedule")
		}

		if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
			return err
		}

		// the appointment never conflicts with itself
		if err := domain.NewAllocator(tx).AssertFree(ctx, slot, &ap.ID); err != nil {
			return err
		}

		if err := domain.Reschedule(ap, slot); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		moved = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("appointment rescheduled",
		"appointment_id", moved.ID,
		"slot", slot.String(),
	)

	return moved, nil
}
