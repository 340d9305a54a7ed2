package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

func requireOperator(actor identity.Actor) error {
	if !actor.IsOperator() {
		return httperr.ErrBusinessf(httperr.CodeUnauthorized, "operator only")
	}
	return nil
}

// ======================================================
// Add
// ======================================================

type AddServiceOffer struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewAddServiceOffer(repo domain.Repository, cache domain.Cache) *AddServiceOffer {
	if cache == nil {
		cache = domain.NopCache{}
	}
	return &AddServiceOffer{repo: repo, cache: cache}
}

func (uc *AddServiceOffer) Execute(
	ctx context.Context,
	actor identity.Actor,
	name string,
	laborRate float64,
) (*models.ServiceOffer, error) {

	if err := requireOperator(actor); err != nil {
		return nil, err
	}

	name, laborRate, err := domain.Normalize(name, laborRate)
	if err != nil {
		return nil, err
	}

	offer := &models.ServiceOffer{
		ID:        uuid.New(),
		Name:      name,
		LaborRate: laborRate,
	}

	if err := uc.repo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	logger.Info("service offer added", "service_id", offer.ID, "name", offer.Name)

	return offer, nil
}

// ======================================================
// Update
// ======================================================

type UpdateServiceOffer struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewUpdateServiceOffer(repo domain.Repository, cache domain.Cache) *UpdateServiceOffer {
	if cache == nil {
		cache = domain.NopCache{}
	}
	return &UpdateServiceOffer{repo: repo, cache: cache}
}

// Execute changes the catalog only; booked line items keep their snapshot.
func (uc *UpdateServiceOffer) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uuid.UUID,
	name string,
	laborRate float64,
) (*models.ServiceOffer, error) {

	if err := requireOperator(actor); err != nil {
		return nil, err
	}

	name, laborRate, err := domain.Normalize(name, laborRate)
	if err != nil {
		return nil, err
	}

	var updated *models.ServiceOffer

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		offer, err := tx.GetOffer(ctx, id)
		if err != nil {
			return httperr.MapNotFound(err, "service")
		}

		offer.Name = name
		offer.LaborRate = laborRate

		if err := tx.UpdateOffer(ctx, offer); err != nil {
			return httperr.MapNotFound(err, "service")
		}

		updated = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	logger.Info("service offer updated", "service_id", updated.ID, "name", updated.Name)

	return updated, nil
}

// ======================================================
// Delete
// ======================================================

type DeleteServiceOffer struct {
	repo  domain.Repository
	cache domain.Cache
	audit *audit.Logger
}

func NewDeleteServiceOffer(repo domain.Repository, cache domain.Cache, audit *audit.Logger) *DeleteServiceOffer {
	if cache == nil {
		cache = domain.NopCache{}
	}
	return &DeleteServiceOffer{repo: repo, cache: cache, audit: audit}
}

func (uc *DeleteServiceOffer) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uuid.UUID,
) error {

	if err := requireOperator(actor); err != nil {
		return err
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		offer, err := tx.GetOffer(ctx, id)
		if err != nil {
			return httperr.MapNotFound(err, "service")
		}

		if err := tx.DeleteOffer(ctx, id); err != nil {
			return httperr.MapNotFound(err, "service")
		}

		return uc.audit.Log(ctx, tx, actor.ID, audit.ItemServiceOffer, offer.ID,
			audit.ServiceOfferSnapshot(offer)...)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	logger.Info("service offer deleted", "service_id", id)

	return nil
}
