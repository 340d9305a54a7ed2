package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer,omitempty"`

	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Vehicle   Vehicle   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vehicle,omitempty"`

	// Slot, kept in its canonical text form: YYYY-MM-DD and HH:MM.
	SlotDate string `gorm:"size:10;not null;index:ix_appointments_slot" json:"date"`
	SlotTime string `gorm:"size:5;not null;index:ix_appointments_slot" json:"time"`

	Status        string  `gorm:"size:20;not null;default:'Pending'" json:"status"`
	StatusMessage *string `gorm:"type:text" json:"status_message"`
	IsDeleted     bool    `gorm:"not null;default:false" json:"is_deleted"`

	LineItems []AppointmentLineItem `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"line_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalLaborCost sums the snapshotted rates.
func (a *Appointment) TotalLaborCost() float64 {
	var total float64
	for _, li := range a.LineItems {
		total += li.LaborRate
	}
	return RoundMoney(total)
}

// AppointmentLineItem is a service offer copied by value at booking time.
// ServiceOfferID records where it came from; it is not a foreign key, so
// catalog edits and deletions never reach it.
type AppointmentLineItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`

	ServiceOfferID uuid.UUID `gorm:"type:uuid" json:"service_offer_id"`
	ServiceName    string    `gorm:"size:100;not null" json:"service_name"`
	LaborRate      float64   `gorm:"type:decimal(10,2);not null" json:"labor_rate"`
	Position       int       `gorm:"not null;default:0" json:"position"`
}
