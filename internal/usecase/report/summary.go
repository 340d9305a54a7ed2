package report

import (
	"context"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/dto"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
)

// GetSummary builds the operator dashboard for one day.
type GetSummary struct {
	repo report.Repository
	now  timezone.Clock
}

func NewGetSummary(repo report.Repository, now timezone.Clock) *GetSummary {
	if now == nil {
		now = timezone.Now
	}
	return &GetSummary{repo: repo, now: now}
}

// Execute defaults date to today in the shop's timezone.
func (uc *GetSummary) Execute(ctx context.Context, date string) (*dto.SummaryDTO, error) {
	if date == "" {
		date = uc.now().Format(domain.DateLayout)
	} else {
		slot, err := domain.ParseSlot(date, "00:00")
		if err != nil {
			return nil, err
		}
		date = slot.Date
	}

	customers, err := uc.repo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := uc.repo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := uc.repo.CompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	day := make([]dto.DayAppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		services := make([]string, 0, len(ap.LineItems))
		for _, li := range ap.LineItems {
			services = append(services, li.ServiceName)
		}
		day = append(day, dto.DayAppointmentDTO{
			Time:         ap.SlotTime,
			CustomerName: ap.Customer.FullName,
			PlateNo:      ap.Vehicle.PlateNo,
			Status:       ap.Status,
			Services:     services,
		})
	}

	return &dto.SummaryDTO{
		Date:                 date,
		ActiveCustomers:      customers,
		PendingAppointments:  pending,
		CompletedRevenue:     revenue,
		AppointmentsForToday: day,
	}, nil
}
