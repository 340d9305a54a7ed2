package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer,omitempty"`

	Brand   string `gorm:"size:50;not null" json:"brand"`
	Model   string `gorm:"size:50;not null" json:"model"`
	PlateNo string `gorm:"size:20;not null;uniqueIndex:ux_vehicles_plate_no" json:"plate_no"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
