package customer

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/customer"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/validators"
)

type ProfileInput struct {
	FullName string
	Phone    string
}

// SaveProfile creates the actor's customer record on first use and updates it after.
type SaveProfile struct {
	repo domain.Repository
}

func NewSaveProfile(repo domain.Repository) *SaveProfile {
	return &SaveProfile{repo: repo}
}

func (uc *SaveProfile) Execute(
	ctx context.Context,
	actor identity.Actor,
	in ProfileInput,
) (*models.Customer, error) {

	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "full name is required")
	}

	phone, ok := validators.NormalizePhone(in.Phone)
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "invalid phone number")
	}

	existing, err := uc.repo.GetCustomer(ctx, actor.ID)
	switch {
	case err == nil:
		existing.FullName = name
		existing.Phone = phone
		if err := uc.repo.UpdateCustomer(ctx, existing); err != nil {
			return nil, err
		}
		logger.Info("profile updated", "customer_id", existing.ID)
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		c := &models.Customer{
			ID:       actor.ID,
			FullName: name,
			Phone:    phone,
			Role:     string(actor.Role),
		}
		if err := uc.repo.CreateCustomer(ctx, c); err != nil {
			return nil, err
		}
		logger.Info("profile created", "customer_id", c.ID)
		return c, nil

	default:
		return nil, err
	}
}

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, actor identity.Actor) (*models.Customer, error) {
	c, err := uc.repo.GetCustomer(ctx, actor.ID)
	if err != nil {
		return nil, httperr.MapNotFound(err, "customer")
	}
	return c, nil
}

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(ctx context.Context) ([]models.Customer, error) {
	return uc.repo.ListCustomers(ctx)
}
