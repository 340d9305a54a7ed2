package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// ListOffers returns the catalog ordered by name.
	ListOffers(ctx context.Context) ([]models.ServiceOffer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*models.ServiceOffer, error)

	// CreateOffer and UpdateOffer fail with duplicate_name on a taken name.
	CreateOffer(ctx context.Context, offer *models.ServiceOffer) error
	UpdateOffer(ctx context.Context, offer *models.ServiceOffer) error
	DeleteOffer(ctx context.Context, id uuid.UUID) error

	AppendHistory(ctx context.Context, rec *models.HistoryRecord) error
}

// Cache holds the listed catalog between edits.
type Cache interface {
	Get(ctx context.Context) ([]models.ServiceOffer, bool)
	Set(ctx context.Context, offers []models.ServiceOffer)
	Invalidate(ctx context.Context)
}

// NopCache never hits.
type NopCache struct{}

func (NopCache) Get(context.Context) ([]models.ServiceOffer, bool) { return nil, false }
func (NopCache) Set(context.Context, []models.ServiceOffer)        {}
func (NopCache) Invalidate(context.Context)                        {}
