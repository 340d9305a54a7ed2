package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/customer"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

var _ customer.Repository = (*CustomerGormRepository)(nil)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerGormRepository) CreateCustomer(ctx context.Context, c *models.Customer) error {
	err := r.db.WithContext(ctx).Create(c).Error
	return translateWrite(err, httperr.CodeInvalidState)
}

func (r *CustomerGormRepository) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"full_name": c.FullName,
			"phone":     c.Phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListCustomers excludes the operator account.
func (r *CustomerGormRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var cs []models.Customer
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleCustomer).
		Order("full_name ASC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *CustomerGormRepository) GetOperator(ctx context.Context) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleOperator).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
