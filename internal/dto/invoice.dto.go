package dto

import "github.com/google/uuid"

type InvoiceLineDTO struct {
	ServiceName string  `json:"service_name"`
	LaborRate   float64 `json:"labor_rate"`
}

type InvoiceDTO struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	StatusMessage *string   `json:"status_message"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	PlateNo string `json:"plate_no"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`

	Services       []InvoiceLineDTO `json:"services"`
	TotalLaborCost float64          `json:"total_labor_cost"`
}
