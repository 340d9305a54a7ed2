package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	ensureID(&v.ID)
	return nil
}

func (o *ServiceOffer) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID)
	return nil
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

func (li *AppointmentLineItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&li.ID)
	return nil
}

func (h *HistoryRecord) BeforeCreate(tx *gorm.DB) error {
	ensureID(&h.ID)
	return nil
}
