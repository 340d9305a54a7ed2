package report

import (
	"context"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/dto"
)

// GetCustomerDashboard counts what the actor has on file with the shop.
type GetCustomerDashboard struct {
	repo report.Repository
}

func NewGetCustomerDashboard(repo report.Repository) *GetCustomerDashboard {
	return &GetCustomerDashboard{repo: repo}
}

func (uc *GetCustomerDashboard) Execute(ctx context.Context, actor identity.Actor) (*dto.CustomerDashboardDTO, error) {
	completed, err := uc.repo.CountCompletedFor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	vehicles, err := uc.repo.CountVehiclesFor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return &dto.CustomerDashboardDTO{
		CompletedServices: completed,
		Vehicles:          vehicles,
	}, nil
}
