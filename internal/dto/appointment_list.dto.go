package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	StatusMessage *string   `json:"status_message"`
	IsDeleted     bool      `json:"is_deleted"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	PlateNo       string    `json:"plate_no"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Services      []string  `json:"services"`
	TotalCost     float64   `json:"total_cost"`
}

func NewAppointmentListDTO(ap *models.Appointment) AppointmentListDTO {
	services := make([]string, 0, len(ap.LineItems))
	for _, li := range ap.LineItems {
		services = append(services, li.ServiceName)
	}

	return AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.SlotDate,
		Time:          ap.SlotTime,
		Status:        ap.Status,
		StatusMessage: ap.StatusMessage,
		IsDeleted:     ap.IsDeleted,
		CustomerName:  ap.Customer.FullName,
		CustomerPhone: ap.Customer.Phone,
		PlateNo:       ap.Vehicle.PlateNo,
		Brand:         ap.Vehicle.Brand,
		Model:         ap.Vehicle.Model,
		Services:      services,
		TotalCost:     ap.TotalLaborCost(),
	}
}

func NewAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentListDTO(&aps[i]))
	}
	return out
}

type UpcomingDTO struct {
	ID      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	PlateNo string    `json:"plate_no"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
}

type StatusMessageDTO struct {
	Status  string  `json:"status"`
	Message *string `json:"message"`
}
