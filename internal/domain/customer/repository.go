package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type Repository interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, c *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetOperator(ctx context.Context) (*models.Customer, error)
}
