package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Actor identity.Actor

	VehicleID  uuid.UUID
	ServiceIDs []uuid.UUID

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo domain.Repository
	now  timezone.Clock
}

func NewBookAppointment(
	repo domain.Repository,
	now timezone.Clock,
) *BookAppointment {
	if now == nil {
		now = timezone.Now
	}
	return &BookAppointment{
		repo: repo,
		now:  now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Date / time rules
	// --------------------------------------------------
	slot, err := domain.ValidateSlot(in.Date, in.Time, uc.now())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Service selection
	// --------------------------------------------------
	serviceIDs := dedupe(in.ServiceIDs)
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeEmptyServiceSelection)
	}

	var created *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// Customer and vehicle
		// --------------------------------------------------
		customer, err := tx.GetCustomer(ctx, in.Actor.ID)
		if err != nil {
			return httperr.MapNotFound(err, "customer")
		}

		vehicle, err := tx.GetVehicle(ctx, in.VehicleID)
		if err != nil {
			return httperr.MapNotFound(err, "vehicle")
		}
		if !in.Actor.Owns(vehicle.CustomerID) {
			return httperr.ErrBusinessf(httperr.CodeUnauthorized, "vehicle belongs to another customer")
		}

		// --------------------------------------------------
		// Slot
		// --------------------------------------------------
		if err := domain.NewAllocator(tx).AssertFree(ctx, slot, nil); err != nil {
			return err
		}

		// --------------------------------------------------
		// Services, snapshotted by value
		// --------------------------------------------------
		offers, err := tx.FindServiceOffers(ctx, serviceIDs)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]models.ServiceOffer, len(offers))
		for _, o := range offers {
			byID[o.ID] = o
		}

		items := make([]models.AppointmentLineItem, 0, len(serviceIDs))
		for i, id := range serviceIDs {
			offer, ok := byID[id]
			if !ok {
				return httperr.ErrBusinessf(httperr.CodeInvalidService, id.String())
			}
			items = append(items, models.AppointmentLineItem{
				ID:             uuid.New(),
				ServiceOfferID: offer.ID,
				ServiceName:    offer.Name,
				LaborRate:      models.RoundMoney(offer.LaborRate),
				Position:       i,
			})
		}

		// --------------------------------------------------
		// Appointment and line items, one write
		// --------------------------------------------------
		ap := &models.Appointment{
			ID:         uuid.New(),
			CustomerID: customer.ID,
			VehicleID:  vehicle.ID,
			SlotDate:   slot.Date,
			SlotTime:   slot.Time,
			Status:     string(domain.InitialStatus()),
			LineItems:  items,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Customer = *customer
		ap.Vehicle = *vehicle
		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("appointment booked",
		"appointment_id", created.ID,
		"slot", slot.String(),
		"services", len(created.LineItems),
	)

	return created, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
