package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCustomer = "customer"
	RoleOperator = "operator"
)

// Customer is anyone who books, including the single operator-role record.
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Role     string `gorm:"size:20;not null;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
