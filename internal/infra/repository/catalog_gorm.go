package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

var _ catalog.Repository = (*CatalogGormRepository)(nil)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) Transaction(
	ctx context.Context,
	fn func(tx catalog.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogGormRepository{db: tx})
	})
}

func (r *CatalogGormRepository) ListOffers(ctx context.Context) ([]models.ServiceOffer, error) {
	var offers []models.ServiceOffer
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *CatalogGormRepository) GetOffer(ctx context.Context, id uuid.UUID) (*models.ServiceOffer, error) {
	var offer models.ServiceOffer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *CatalogGormRepository) CreateOffer(ctx context.Context, offer *models.ServiceOffer) error {
	err := r.db.WithContext(ctx).Create(offer).Error
	return translateWrite(err, httperr.CodeDuplicateName)
}

func (r *CatalogGormRepository) UpdateOffer(ctx context.Context, offer *models.ServiceOffer) error {
	res := r.db.WithContext(ctx).
		Model(&models.ServiceOffer{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"name":       offer.Name,
			"labor_rate": offer.LaborRate,
		})
	if res.Error != nil {
		return translateWrite(res.Error, httperr.CodeDuplicateName)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogGormRepository) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.ServiceOffer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogGormRepository) AppendHistory(ctx context.Context, rec *models.HistoryRecord) error {
	return appendHistory(r.db.WithContext(ctx), rec)
}
