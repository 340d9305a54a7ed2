package catalog

import "github.com/BruksfildServices01/autoshop-scheduler/internal/models"

var defaultOffers = []struct {
	name string
	rate float64
}{
	{"Oil Change", 145.00},
	{"Brake Repair and Inspection", 500.00},
	{"Electrical System Repairs", 1000.00},
	{"Engine Diagnostic Services", 600.00},
	{"Tire Services", 250.00},
	{"Battery Services", 450.00},
	{"Heating and Air Conditioning (A/C) Repairs", 1500.00},
	{"Suspension and Steering System Repairs", 750.00},
	{"Transmission Repair", 2000.00},
}

// DefaultOffers is the catalog a fresh shop starts with. IDs are left for the caller.
func DefaultOffers() []models.ServiceOffer {
	out := make([]models.ServiceOffer, 0, len(defaultOffers))
	for _, o := range defaultOffers {
		out = append(out, models.ServiceOffer{Name: o.name, LaborRate: o.rate})
	}
	return out
}
