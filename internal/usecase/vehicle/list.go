package vehicle

import (
	"context"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/vehicle"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type ListMyVehicles struct {
	repo domain.Repository
}

func NewListMyVehicles(repo domain.Repository) *ListMyVehicles {
	return &ListMyVehicles{repo: repo}
}

func (uc *ListMyVehicles) Execute(ctx context.Context, owner identity.Actor) ([]models.Vehicle, error) {
	return uc.repo.ListByOwner(ctx, owner.ID)
}

// ListAllVehicles is the operator's registry view, owners preloaded.
type ListAllVehicles struct {
	repo domain.Repository
}

func NewListAllVehicles(repo domain.Repository) *ListAllVehicles {
	return &ListAllVehicles{repo: repo}
}

func (uc *ListAllVehicles) Execute(ctx context.Context) ([]models.Vehicle, error) {
	return uc.repo.ListAll(ctx)
}
