package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/dto"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

// InvoiceFor prices an appointment from its line items only, so catalog edits
// made after booking never change the total.
type InvoiceFor struct {
	repo domain.Repository
}

func NewInvoiceFor(repo domain.Repository) *InvoiceFor {
	return &InvoiceFor{repo: repo}
}

func (uc *InvoiceFor) Execute(
	ctx context.Context,
	actor identity.Actor,
	appointmentID uuid.UUID,
) (*dto.InvoiceDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.MapNotFound(err, "appointment")
	}

	if !actor.IsOperator() && !actor.Owns(ap.CustomerID) {
		return nil, httperr.ErrBusinessf(httperr.CodeUnauthorized, "not your appointment")
	}

	lines := make([]dto.InvoiceLineDTO, 0, len(ap.LineItems))
	for _, li := range ap.LineItems {
		lines = append(lines, dto.InvoiceLineDTO{
			ServiceName: li.ServiceName,
			LaborRate:   li.LaborRate,
		})
	}

	return &dto.InvoiceDTO{
		AppointmentID:  ap.ID,
		Date:           ap.SlotDate,
		Time:           ap.SlotTime,
		Status:         ap.Status,
		StatusMessage:  ap.StatusMessage,
		CustomerName:   ap.Customer.FullName,
		CustomerPhone:  ap.Customer.Phone,
		PlateNo:        ap.Vehicle.PlateNo,
		Brand:          ap.Vehicle.Brand,
		Model:          ap.Vehicle.Model,
		Services:       lines,
		TotalLaborCost: ap.TotalLaborCost(),
	}, nil
}
