package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

// ListServiceOffers reads through the cache.
type ListServiceOffers struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewListServiceOffers(repo domain.Repository, cache domain.Cache) *ListServiceOffers {
	if cache == nil {
		cache = domain.NopCache{}
	}
	return &ListServiceOffers{repo: repo, cache: cache}
}

func (uc *ListServiceOffers) Execute(ctx context.Context) ([]models.ServiceOffer, error) {
	if offers, ok := uc.cache.Get(ctx); ok {
		return offers, nil
	}

	offers, err := uc.repo.ListOffers(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, offers)
	return offers, nil
}
