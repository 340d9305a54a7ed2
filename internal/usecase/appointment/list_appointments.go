package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/dto"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

type ListAppointmentsInput struct {
	Status string
	Date   string
}

// ListAppointments is the operator's view of every appointment, soft-deleted ones included.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	if in.Status != "" {
		if _, ok := domain.ParseStatus(in.Status); !ok {
			return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "unknown status "+in.Status)
		}
	}

	filter := domain.ListFilter{Status: in.Status}
	if in.Date != "" {
		slot, err := domain.ParseSlot(in.Date, "00:00")
		if err != nil {
			return nil, err
		}
		filter.Date = slot.Date
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(appointments), nil
}
