package dto

type DayAppointmentDTO struct {
	Time         string   `json:"time"`
	CustomerName string   `json:"customer_name"`
	PlateNo      string   `json:"plate_no"`
	Status       string   `json:"status"`
	Services     []string `json:"services"`
}

type SummaryDTO struct {
	Date                 string              `json:"date"`
	ActiveCustomers      int64               `json:"active_customers"`
	PendingAppointments  int64               `json:"pending_appointments"`
	CompletedRevenue     float64             `json:"completed_revenue"`
	AppointmentsForToday []DayAppointmentDTO `json:"appointments"`
}

type CustomerDashboardDTO struct {
	CompletedServices int64 `json:"completed_services"`
	Vehicles          int64 `json:"vehicles"`
}
