package audit

import "github.com/BruksfildServices01/autoshop-scheduler/internal/models"

// AppointmentSnapshot captures an appointment before cancellation.
// GetAppointment-loaded customer and vehicle are expected.
func AppointmentSnapshot(ap *models.Appointment) []Field {
	return []Field{
		F("appointment_id", ap.ID),
		F("date", ap.SlotDate),
		F("time", ap.SlotTime),
		F("status", ap.Status),
		F("customer", ap.Customer.FullName),
		F("plate_no", ap.Vehicle.PlateNo),
	}
}

// DeletedAppointmentSnapshot adds the total cost at deletion time.
func DeletedAppointmentSnapshot(ap *models.Appointment) []Field {
	return append(AppointmentSnapshot(ap), F("total_cost", ap.TotalLaborCost()))
}

func VehicleSnapshot(v *models.Vehicle) []Field {
	return []Field{
		F("vehicle_id", v.ID),
		F("customer_id", v.CustomerID),
		F("brand", v.Brand),
		F("model", v.Model),
		F("plate_no", v.PlateNo),
	}
}

func ServiceOfferSnapshot(o *models.ServiceOffer) []Field {
	return []Field{
		F("service_id", o.ID),
		F("service_name", o.Name),
		F("labor_rate", o.LaborRate),
	}
}
