package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/history"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

var _ history.Repository = (*HistoryGormRepository)(nil)

type HistoryGormRepository struct {
	db *gorm.DB
}

func NewHistoryGormRepository(db *gorm.DB) *HistoryGormRepository {
	return &HistoryGormRepository{db: db}
}

func (r *HistoryGormRepository) ListHistory(
	ctx context.Context,
	filter history.Filter,
) ([]history.Entry, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.HistoryRecord{})

	if filter.ActorID != nil {
		q = q.Where("history_records.actor_id = ?", *filter.ActorID)
	}
	if filter.ItemType != "" {
		q = q.Where("history_records.item_type = ?", filter.ItemType)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.
		Select("history_records.*, COALESCE(customers.full_name, '') AS actor_name").
		Joins("LEFT JOIN customers ON customers.id = history_records.actor_id").
		Order("history_records.recorded_at DESC")
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}

	entries := []history.Entry{}
	if err := page.Scan(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
