package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type SetAppointmentStatusInput struct {
	AppointmentID uuid.UUID
	Status        string

	// DisplayName goes into the Completed message; the customer's name when empty.
	DisplayName string
}

// SetAppointmentStatus is the operator's approve / reject / complete action.
type SetAppointmentStatus struct {
	repo domain.Repository
}

func NewSetAppointmentStatus(repo domain.Repository) *SetAppointmentStatus {
	return &SetAppointmentStatus{repo: repo}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	in SetAppointmentStatusInput,
) (*models.Appointment, error) {

	next, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "unknown status "+in.Status)
	}

	var updated *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment")
		}

		name := in.DisplayName
		if name == "" {
			name = ap.Customer.FullName
		}

		if err := domain.SetStatus(ap, next, name); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return httperr.MapNotFound(err, "appointment")
		}

		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("appointment status set",
		"appointment_id", updated.ID,
		"status", updated.Status,
	)

	return updated, nil
}
