package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceOffer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string  `gorm:"size:100;not null;uniqueIndex:ux_service_offers_name" json:"name"`
	LaborRate float64 `gorm:"type:decimal(10,2);not null" json:"labor_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
